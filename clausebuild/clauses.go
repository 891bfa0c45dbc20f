package clausebuild

import (
	"mlnforge/formula"
	"mlnforge/pathwalk"
)

// Clauses builds Horn and/or conjunction clauses from a set of paths. A
// candidate is emitted only if no clause already produced in this call, or
// present in preexisting, is alpha-equivalent to it. The result preserves
// input path order and first-seen de-duplication.
func Clauses(
	paths []formula.HPath,
	schema formula.PredicateSchema,
	modes formula.ModeDeclarations,
	evidence formula.Evidence,
	kind ClauseKind,
	preexisting []formula.Clause,
) ([]formula.Clause, error) {
	blocked := formula.NewClauseSet()
	for _, c := range preexisting {
		blocked.Add(c)
	}

	var out []formula.Clause
	for _, path := range paths {
		body, head, err := pathwalk.WalkClausal(path, schema, modes, evidence)
		if err != nil {
			return nil, err
		}

		bodyLits := make([]formula.Literal, len(body))
		for i, a := range body {
			bodyLits[i] = formula.Negative(a)
		}

		if kind.hasConjunction() {
			lits := append(append([]formula.Literal{}, bodyLits...), formula.Positive(head))
			c := formula.NewClause(formula.SoftWeight(1.0), lits...)
			if !blocked.Contains(c) {
				blocked.Add(c)
				out = append(out, c)
			}
		}
		if kind.hasHorn() {
			lits := append(append([]formula.Literal{}, bodyLits...), formula.Negative(head))
			c := formula.NewClause(formula.SoftWeight(1.0), lits...)
			if !blocked.Contains(c) {
				blocked.Add(c)
				out = append(out, c)
			}
		}
	}
	return out, nil
}
