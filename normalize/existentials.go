package normalize

import (
	"fmt"

	"mlnforge/formula"
	"mlnforge/mlnerr"
)

// EliminateExistentials replaces every existentially bound variable with the
// disjunction of its body over that variable's domain constants.
func EliminateExistentials(f formula.FormulaConstruct, constants formula.ConstantsSet) (formula.FormulaConstruct, error) {
	switch v := f.(type) {
	case formula.Atomic:
		return v, nil
	case formula.Not:
		inner, err := EliminateExistentials(v.Operand, constants)
		if err != nil {
			return nil, err
		}
		return formula.Not{Operand: inner}, nil
	case formula.And:
		l, r, err := eliminateBoth(v.Left, v.Right, constants)
		if err != nil {
			return nil, err
		}
		return formula.And{Left: l, Right: r}, nil
	case formula.Or:
		l, r, err := eliminateBoth(v.Left, v.Right, constants)
		if err != nil {
			return nil, err
		}
		return formula.Or{Left: l, Right: r}, nil
	case formula.Implies:
		l, r, err := eliminateBoth(v.Left, v.Right, constants)
		if err != nil {
			return nil, err
		}
		return formula.Implies{Left: l, Right: r}, nil
	case formula.Iff:
		l, r, err := eliminateBoth(v.Left, v.Right, constants)
		if err != nil {
			return nil, err
		}
		return formula.Iff{Left: l, Right: r}, nil
	case formula.ForAll:
		inner, err := EliminateExistentials(v.Body, constants)
		if err != nil {
			return nil, err
		}
		return formula.ForAll{Var: v.Var, Body: inner}, nil
	case formula.Exists:
		body, err := EliminateExistentials(v.Body, constants)
		if err != nil {
			return nil, err
		}
		symbols, ok := constants[v.Var.Domain]
		if !ok || len(symbols) == 0 {
			return nil, &mlnerr.SchemaError{Domain: string(v.Var.Domain)}
		}
		disjuncts := make([]formula.FormulaConstruct, len(symbols))
		for i, s := range symbols {
			disjuncts[i] = substituteVar(body, v.Var.Name, formula.Constant{Symbol: s})
		}
		return formula.Or2(disjuncts...), nil
	default:
		panic(fmt.Sprintf("normalize: unknown formula variant %T", f))
	}
}

func eliminateBoth(left, right formula.FormulaConstruct, constants formula.ConstantsSet) (formula.FormulaConstruct, formula.FormulaConstruct, error) {
	l, err := EliminateExistentials(left, constants)
	if err != nil {
		return nil, nil, err
	}
	r, err := EliminateExistentials(right, constants)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

// substituteVar replaces every free occurrence of a variable name with a
// replacement term. Standardization guarantees the name is unique to this
// binder, so no shadowing check is needed.
func substituteVar(f formula.FormulaConstruct, name string, replacement formula.Term) formula.FormulaConstruct {
	switch v := f.(type) {
	case formula.Atomic:
		return formula.Atomic{Atom: substituteAtom(v.Atom, name, replacement)}
	case formula.Not:
		return formula.Not{Operand: substituteVar(v.Operand, name, replacement)}
	case formula.And:
		return formula.And{Left: substituteVar(v.Left, name, replacement), Right: substituteVar(v.Right, name, replacement)}
	case formula.Or:
		return formula.Or{Left: substituteVar(v.Left, name, replacement), Right: substituteVar(v.Right, name, replacement)}
	case formula.Implies:
		return formula.Implies{Left: substituteVar(v.Left, name, replacement), Right: substituteVar(v.Right, name, replacement)}
	case formula.Iff:
		return formula.Iff{Left: substituteVar(v.Left, name, replacement), Right: substituteVar(v.Right, name, replacement)}
	case formula.Exists:
		return formula.Exists{Var: v.Var, Body: substituteVar(v.Body, name, replacement)}
	case formula.ForAll:
		return formula.ForAll{Var: v.Var, Body: substituteVar(v.Body, name, replacement)}
	default:
		panic(fmt.Sprintf("normalize: unknown formula variant %T", f))
	}
}

func substituteAtom(a formula.AtomicFormula, name string, replacement formula.Term) formula.AtomicFormula {
	args := make([]formula.Term, len(a.Args))
	for i, t := range a.Args {
		args[i] = substituteTerm(t, name, replacement)
	}
	return formula.AtomicFormula{Predicate: a.Predicate, Args: args}
}

func substituteTerm(t formula.Term, name string, replacement formula.Term) formula.Term {
	switch v := t.(type) {
	case formula.Variable:
		if v.Name == name {
			return replacement
		}
		return v
	case formula.Constant:
		return v
	case formula.Function:
		args := make([]formula.Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = substituteTerm(a, name, replacement)
		}
		return formula.Function{Symbol: v.Symbol, Args: args}
	default:
		panic(fmt.Sprintf("normalize: unknown term variant %T", t))
	}
}
