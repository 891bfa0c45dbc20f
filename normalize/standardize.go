package normalize

import (
	"fmt"

	"mlnforge/formula"
)

// StandardizeVariables renames each quantifier-bound variable to a fresh
// name so that no two quantifiers in the formula bind the same name.
func StandardizeVariables(f formula.FormulaConstruct) formula.FormulaConstruct {
	r := &varRenamer{scope: make(map[string]string)}
	return r.walk(f)
}

type varRenamer struct {
	counter int
	scope   map[string]string
}

func (r *varRenamer) walk(f formula.FormulaConstruct) formula.FormulaConstruct {
	switch v := f.(type) {
	case formula.Atomic:
		return formula.Atomic{Atom: r.renameAtom(v.Atom)}
	case formula.Not:
		return formula.Not{Operand: r.walk(v.Operand)}
	case formula.And:
		return formula.And{Left: r.walk(v.Left), Right: r.walk(v.Right)}
	case formula.Or:
		return formula.Or{Left: r.walk(v.Left), Right: r.walk(v.Right)}
	case formula.Implies:
		return formula.Implies{Left: r.walk(v.Left), Right: r.walk(v.Right)}
	case formula.Iff:
		return formula.Iff{Left: r.walk(v.Left), Right: r.walk(v.Right)}
	case formula.Exists:
		return r.bind(v.Var, v.Body, func(nv formula.Variable, body formula.FormulaConstruct) formula.FormulaConstruct {
			return formula.Exists{Var: nv, Body: body}
		})
	case formula.ForAll:
		return r.bind(v.Var, v.Body, func(nv formula.Variable, body formula.FormulaConstruct) formula.FormulaConstruct {
			return formula.ForAll{Var: nv, Body: body}
		})
	default:
		panic(fmt.Sprintf("normalize: unknown formula variant %T", f))
	}
}

func (r *varRenamer) bind(v formula.Variable, body formula.FormulaConstruct, wrap func(formula.Variable, formula.FormulaConstruct) formula.FormulaConstruct) formula.FormulaConstruct {
	r.counter++
	fresh := formula.Variable{Name: fmt.Sprintf("%s_%d", v.Name, r.counter), Domain: v.Domain}

	prev, hadPrev := r.scope[v.Name]
	r.scope[v.Name] = fresh.Name
	newBody := r.walk(body)
	if hadPrev {
		r.scope[v.Name] = prev
	} else {
		delete(r.scope, v.Name)
	}
	return wrap(fresh, newBody)
}

func (r *varRenamer) renameAtom(a formula.AtomicFormula) formula.AtomicFormula {
	args := make([]formula.Term, len(a.Args))
	for i, t := range a.Args {
		args[i] = r.renameTerm(t)
	}
	return formula.AtomicFormula{Predicate: a.Predicate, Args: args}
}

func (r *varRenamer) renameTerm(t formula.Term) formula.Term {
	switch v := t.(type) {
	case formula.Variable:
		if newName, ok := r.scope[v.Name]; ok {
			return formula.Variable{Name: newName, Domain: v.Domain}
		}
		return v
	case formula.Constant:
		return v
	case formula.Function:
		args := make([]formula.Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = r.renameTerm(a)
		}
		return formula.Function{Symbol: v.Symbol, Args: args}
	default:
		panic(fmt.Sprintf("normalize: unknown term variant %T", t))
	}
}
