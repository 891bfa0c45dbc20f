package distribute

import (
	"fmt"

	"mlnforge/formula"
)

// GenericDistribute converts an NNF formula into CNF shape by recursively
// applying the standard distributive law ∨ over ∧ — (P∧Q)∨R ≡ (P∨R)∧(Q∨R) —
// bottom-up. This is the exponential-worst-case fallback the hybrid
// distributor optimizes around; it handles any NNF input, not only formulas
// satisfying the fast-distribute property.
func GenericDistribute(f formula.FormulaConstruct) formula.FormulaConstruct {
	switch v := f.(type) {
	case formula.Atomic:
		return v
	case formula.Not:
		return v
	case formula.And:
		return formula.And{Left: GenericDistribute(v.Left), Right: GenericDistribute(v.Right)}
	case formula.Or:
		return distributeOr(GenericDistribute(v.Left), GenericDistribute(v.Right))
	default:
		panic(fmt.Sprintf("distribute: unknown NNF formula variant %T", f))
	}
}

// distributeOr assumes both operands are already in CNF shape (a conjunction
// of disjunctions, or a bare disjunction/literal) and returns the CNF for
// their disjunction.
func distributeOr(l, r formula.FormulaConstruct) formula.FormulaConstruct {
	if land, ok := l.(formula.And); ok {
		return formula.And{Left: distributeOr(land.Left, r), Right: distributeOr(land.Right, r)}
	}
	if rand, ok := r.(formula.And); ok {
		return formula.And{Left: distributeOr(l, rand.Left), Right: distributeOr(l, rand.Right)}
	}
	return formula.Or{Left: l, Right: r}
}
