package clausebuild

import (
	"mlnforge/formula"
	"mlnforge/funcintro"
	"mlnforge/pathwalk"
)

// DefiniteOptions carries the opt-in policy hooks for definite-clause
// construction.
type DefiniteOptions struct {
	// RequireDistinctHeadTerms rejects a candidate whose head arguments are
	// not pairwise distinct variables. Default false, matching the source's
	// currently-disabled fluent-head gate (see DESIGN.md).
	RequireDistinctHeadTerms bool
}

// DefiniteClauses builds one weighted definite clause per path, runs the
// function-introduction formatter exactly once over the accumulated set,
// then de-duplicates the result against preexisting by literal-set equality.
func DefiniteClauses(
	paths []formula.HPath,
	schema formula.PredicateSchema,
	modes formula.ModeDeclarations,
	evidence formula.Evidence,
	preexisting *formula.WeightedDefiniteClauseSet,
	opts DefiniteOptions,
	formatter funcintro.Formatter,
) (*formula.WeightedDefiniteClauseSet, error) {
	if formatter == nil {
		formatter = funcintro.Identity{}
	}

	built := formula.NewWeightedDefiniteClauseSet()
	for _, path := range paths {
		body, head, err := pathwalk.WalkDefinite(path, schema, modes, evidence)
		if err != nil {
			return nil, err
		}
		if opts.RequireDistinctHeadTerms && !distinctVariableTerms(head) {
			continue
		}
		built.Add(formula.WeightedDefiniteClause{
			Weight: formula.SoftWeight(1.0),
			Clause: formula.DefiniteClause{Head: head, Body: body},
		})
	}

	formatted := formatter.IntroduceFunctions(built)

	out := formula.NewWeightedDefiniteClauseSet()
	for _, wdc := range formatted.Slice() {
		if preexisting != nil && preexisting.Contains(wdc.Clause) {
			continue
		}
		out.Add(wdc)
	}
	return out, nil
}

func distinctVariableTerms(a formula.AtomicFormula) bool {
	seen := make(map[string]bool, len(a.Args))
	for _, t := range a.Args {
		v, ok := t.(formula.Variable)
		if !ok {
			return false
		}
		if seen[v.Name] {
			return false
		}
		seen[v.Name] = true
	}
	return true
}
