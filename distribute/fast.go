package distribute

import (
	"sort"
	"strconv"

	"mlnforge/formula"
)

// asLiteral reports whether f is a bare literal (Atomic or Not-of-Atomic).
func asLiteral(f formula.FormulaConstruct) (formula.Literal, bool) {
	switch v := f.(type) {
	case formula.Atomic:
		return formula.Positive(v.Atom), true
	case formula.Not:
		if a, ok := v.Operand.(formula.Atomic); ok {
			return formula.Negative(a.Atom), true
		}
	}
	return formula.Literal{}, false
}

// topDisjuncts flattens the outermost right-associated ∨ chain into its
// operands, leaving And subtrees intact.
func topDisjuncts(f formula.FormulaConstruct) []formula.FormulaConstruct {
	or, ok := f.(formula.Or)
	if !ok {
		return []formula.FormulaConstruct{f}
	}
	return append([]formula.FormulaConstruct{or.Left}, topDisjuncts(or.Right)...)
}

// atomsOf flattens a conjunction-of-literals subtree into its literal list.
// It reports false if the subtree contains anything but And, Atomic, or
// Not-of-Atomic — i.e. a conjunction group is not flat, which disqualifies
// the fast path even when the raw code scan of CanFastDistribute would
// otherwise accept it (a conservative safety net for the predicate's
// documented subtlety, see DESIGN.md).
func atomsOf(f formula.FormulaConstruct) ([]formula.Literal, bool) {
	if lit, ok := asLiteral(f); ok {
		return []formula.Literal{lit}, true
	}
	and, ok := f.(formula.And)
	if !ok {
		return nil, false
	}
	left, ok := atomsOf(and.Left)
	if !ok {
		return nil, false
	}
	right, ok := atomsOf(and.Right)
	if !ok {
		return nil, false
	}
	return append(left, right...), true
}

type fastCandidate struct {
	keys []int
	set  map[int]bool
}

func newFastCandidate(keys []int) fastCandidate {
	c := fastCandidate{keys: append([]int(nil), keys...), set: make(map[int]bool, len(keys))}
	for _, k := range keys {
		c.set[k] = true
	}
	return c
}

func candidateKey(keys []int) string {
	sorted := append([]int(nil), keys...)
	sort.Ints(sorted)
	buf := make([]byte, 0, 8*len(sorted))
	for _, k := range sorted {
		buf = strconv.AppendInt(buf, int64(k), 10)
		buf = append(buf, ',')
	}
	return string(buf)
}

// FastDistribute runs the integer-encoded specialized distributor described
// in §4.2: it separates solo top-level disjuncts (the prefix) from
// conjunction groups, then folds the groups one at a time into a working set
// of candidate clauses, deduplicating by sorted literal-key equality. It
// reports ok=false when a "conjunction group" is not actually flat (contains
// a nested Or), in which case the caller must fall back to GenericDistribute.
func FastDistribute(f formula.FormulaConstruct, enc *Encoder) (formula.FormulaConstruct, bool) {
	var prefixKeys []int
	var groups [][]int

	for _, d := range topDisjuncts(f) {
		if lit, ok := asLiteral(d); ok {
			prefixKeys = append(prefixKeys, enc.keyFor(lit))
			continue
		}
		atoms, ok := atomsOf(d)
		if !ok {
			return nil, false
		}
		keys := make([]int, len(atoms))
		for i, a := range atoms {
			keys[i] = enc.keyFor(a)
		}
		groups = append(groups, keys)
	}

	candidates := []fastCandidate{newFastCandidate(prefixKeys)}
	for _, group := range groups {
		seen := make(map[string]bool)
		var next []fastCandidate
		for _, existing := range candidates {
			for _, a := range group {
				var result fastCandidate
				if existing.set[a] {
					result = existing
				} else {
					combined := make([]int, len(existing.keys)+1)
					copy(combined, existing.keys)
					combined[len(existing.keys)] = a
					result = newFastCandidate(combined)
				}
				key := candidateKey(result.keys)
				if seen[key] {
					continue
				}
				seen[key] = true
				next = append(next, result)
			}
		}
		candidates = next
	}

	clauseForms := make([]formula.FormulaConstruct, len(candidates))
	for i, c := range candidates {
		lits := make([]formula.FormulaConstruct, len(c.keys))
		for j, k := range c.keys {
			lit, _ := enc.Literal(k)
			lits[j] = literalFormula(lit)
		}
		clauseForms[i] = formula.Or2(lits...)
	}
	return formula.And2(clauseForms...), true
}
