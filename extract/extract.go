// Package extract splits a fully distributed top-level conjunction of
// disjunctions into individual weighted clauses.
package extract

import (
	"fmt"

	"mlnforge/formula"
)

// Clauses walks the top-level ∧ of a distributed formula and emits one
// Clause per conjunct, dropping tautologies and clauses that are
// alpha-equivalent to one already emitted within this call.
func Clauses(f formula.FormulaConstruct, weight formula.Weight) []formula.Clause {
	var conjuncts []formula.FormulaConstruct
	flattenAnd(f, &conjuncts)

	seen := make(map[string]bool, len(conjuncts))
	out := make([]formula.Clause, 0, len(conjuncts))
	for _, c := range conjuncts {
		clause := formula.NewClause(weight, flattenOr(c)...)
		if clause.IsTautology() {
			continue
		}
		key := formula.CanonicalKey(clause)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, clause)
	}
	return out
}

func flattenAnd(f formula.FormulaConstruct, out *[]formula.FormulaConstruct) {
	if and, ok := f.(formula.And); ok {
		flattenAnd(and.Left, out)
		flattenAnd(and.Right, out)
		return
	}
	*out = append(*out, f)
}

func flattenOr(f formula.FormulaConstruct) []formula.Literal {
	if lit, ok := literalOf(f); ok {
		return []formula.Literal{lit}
	}
	or, ok := f.(formula.Or)
	if !ok {
		panic(fmt.Sprintf("extract: expected a disjunction of literals, got %T", f))
	}
	return append(flattenOr(or.Left), flattenOr(or.Right)...)
}

func literalOf(f formula.FormulaConstruct) (formula.Literal, bool) {
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
