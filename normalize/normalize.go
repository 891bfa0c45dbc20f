// Package normalize implements the fixed normalization pipeline required
// before hybrid distribution: implication removal, negation-normal-form
// conversion, variable standardization, existential elimination, and
// universal dropping.
package normalize

import (
	"fmt"

	"mlnforge/formula"
)

// Normalize runs the five normalization steps in the order the spec fixes:
// remove implications, push negations to atoms, standardize variable names,
// eliminate existentials against constants, drop universal quantifiers.
func Normalize(f formula.FormulaConstruct, constants formula.ConstantsSet) (formula.FormulaConstruct, error) {
	f = RemoveImplications(f)
	f = ToNNF(f)
	f = StandardizeVariables(f)
	f, err := EliminateExistentials(f, constants)
	if err != nil {
		return nil, err
	}
	return DropUniversals(f), nil
}

// RemoveImplications rewrites A=>B as ¬A∨B and A<=>B as (¬A∨B)∧(A∨¬B).
func RemoveImplications(f formula.FormulaConstruct) formula.FormulaConstruct {
	switch v := f.(type) {
	case formula.Atomic:
		return v
	case formula.Not:
		return formula.Not{Operand: RemoveImplications(v.Operand)}
	case formula.And:
		return formula.And{Left: RemoveImplications(v.Left), Right: RemoveImplications(v.Right)}
	case formula.Or:
		return formula.Or{Left: RemoveImplications(v.Left), Right: RemoveImplications(v.Right)}
	case formula.Implies:
		return formula.Or{Left: formula.Not{Operand: RemoveImplications(v.Left)}, Right: RemoveImplications(v.Right)}
	case formula.Iff:
		l := RemoveImplications(v.Left)
		r := RemoveImplications(v.Right)
		return formula.And{
			Left:  formula.Or{Left: formula.Not{Operand: l}, Right: r},
			Right: formula.Or{Left: l, Right: formula.Not{Operand: r}},
		}
	case formula.Exists:
		return formula.Exists{Var: v.Var, Body: RemoveImplications(v.Body)}
	case formula.ForAll:
		return formula.ForAll{Var: v.Var, Body: RemoveImplications(v.Body)}
	default:
		panic(fmt.Sprintf("normalize: unknown formula variant %T", f))
	}
}

// ToNNF pushes negation down to the atoms via De Morgan's laws.
func ToNNF(f formula.FormulaConstruct) formula.FormulaConstruct { return toNNF(f, false) }

func toNNF(f formula.FormulaConstruct, negate bool) formula.FormulaConstruct {
	switch v := f.(type) {
	case formula.Atomic:
		if negate {
			return formula.Not{Operand: v}
		}
		return v
	case formula.Not:
		return toNNF(v.Operand, !negate)
	case formula.And:
		if negate {
			return formula.Or{Left: toNNF(v.Left, true), Right: toNNF(v.Right, true)}
		}
		return formula.And{Left: toNNF(v.Left, false), Right: toNNF(v.Right, false)}
	case formula.Or:
		if negate {
			return formula.And{Left: toNNF(v.Left, true), Right: toNNF(v.Right, true)}
		}
		return formula.Or{Left: toNNF(v.Left, false), Right: toNNF(v.Right, false)}
	case formula.Exists:
		if negate {
			return formula.ForAll{Var: v.Var, Body: toNNF(v.Body, true)}
		}
		return formula.Exists{Var: v.Var, Body: toNNF(v.Body, false)}
	case formula.ForAll:
		if negate {
			return formula.Exists{Var: v.Var, Body: toNNF(v.Body, true)}
		}
		return formula.ForAll{Var: v.Var, Body: toNNF(v.Body, false)}
	case formula.Implies, formula.Iff:
		panic("normalize: ToNNF requires RemoveImplications to run first")
	default:
		panic(fmt.Sprintf("normalize: unknown formula variant %T", f))
	}
}

// DropUniversals discards ForAll wrappers; the remaining free variables are
// implicitly universal in clausal form.
func DropUniversals(f formula.FormulaConstruct) formula.FormulaConstruct {
	switch v := f.(type) {
	case formula.Atomic:
		return v
	case formula.Not:
		return formula.Not{Operand: DropUniversals(v.Operand)}
	case formula.And:
		return formula.And{Left: DropUniversals(v.Left), Right: DropUniversals(v.Right)}
	case formula.Or:
		return formula.Or{Left: DropUniversals(v.Left), Right: DropUniversals(v.Right)}
	case formula.ForAll:
		return DropUniversals(v.Body)
	default:
		panic(fmt.Sprintf("normalize: unexpected formula variant %T after existential elimination", f))
	}
}
