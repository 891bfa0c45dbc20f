package distribute

// CanFastDistribute implements the declarative fast-distribute predicate:
// scanning left to right over the prefix-encoded formula, once a disjunction
// code has been observed after a conjunction code has already been seen, no
// further conjunction code may appear; and no disjunction code may sit among
// the operands of a conjunction. Every accepted formula is a disjunction of
// literals and/or conjunctions of literals — every ∧ is nested inside the
// outermost ∨ chain. Some such disjunctions (a conjunction group that follows
// an ∨ which itself follows an earlier ∧) are rejected by the first rule and
// take the generic path.
func CanFastDistribute(codes []int) bool {
	sawAnd := false
	sawOrAfterAnd := false
	// open holds one entry per operand still to be read, recording whether
	// that operand lies under a conjunction.
	open := []bool{false}
	for _, c := range codes {
		if len(open) == 0 {
			return false
		}
		underAnd := open[len(open)-1]
		open = open[:len(open)-1]
		switch c {
		case codeAnd:
			if sawOrAfterAnd {
				return false
			}
			sawAnd = true
			open = append(open, true, true)
		case codeOr:
			if underAnd {
				return false
			}
			if sawAnd {
				sawOrAfterAnd = true
			}
			open = append(open, false, false)
		}
	}
	return true
}
