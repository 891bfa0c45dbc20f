package cnf

import (
	"context"
	"errors"
	"testing"

	"mlnforge/formula"
	"mlnforge/mlnerr"
)

func atomicF(pred string, args ...formula.Term) formula.FormulaConstruct {
	return formula.Atomic{Atom: formula.AtomicFormula{Predicate: pred, Args: args}}
}

func TestMakeCNFEmptyInputIsEmptyOutput(t *testing.T) {
	cs, err := MakeCNF(context.Background(), nil, formula.ConstantsSet{})
	if err != nil {
		t.Fatalf("MakeCNF: %v", err)
	}
	if cs.Len() != 0 {
		t.Errorf("expected an empty clause set, got %d clauses", cs.Len())
	}
}

func TestMakeCNFSingleLiteralIsSingleClause(t *testing.T) {
	cs, err := MakeCNF(context.Background(), []Input{FromFormula(atomicF("a"))}, formula.ConstantsSet{})
	if err != nil {
		t.Fatalf("MakeCNF: %v", err)
	}
	if cs.Len() != 1 {
		t.Fatalf("expected 1 clause, got %d", cs.Len())
	}
	if len(cs.Slice()[0].Literals.Slice()) != 1 {
		t.Errorf("expected a single-literal clause")
	}
}

func TestMakeCNFIdentityOnDisjunction(t *testing.T) {
	// S1: A v B, hard
	f := formula.Or{Left: atomicF("A"), Right: atomicF("B")}
	cs, err := MakeCNF(context.Background(), []Input{FromFormula(f)}, formula.ConstantsSet{})
	if err != nil {
		t.Fatalf("MakeCNF: %v", err)
	}
	if cs.Len() != 1 {
		t.Fatalf("expected 1 clause, got %d", cs.Len())
	}
	c := cs.Slice()[0]
	if !c.Weight.Hard {
		t.Errorf("expected the clause to inherit the hard weight")
	}
	if len(c.Literals.Slice()) != 2 {
		t.Errorf("expected 2 literals, got %d", len(c.Literals.Slice()))
	}
}

func TestMakeCNFFromDefiniteClause(t *testing.T) {
	// S4: head(x) <- p(x), q(x), hard
	x := formula.Variable{Name: "x", Domain: "obj"}
	d := formula.DefiniteClause{
		Head: formula.AtomicFormula{Predicate: "head", Args: []formula.Term{x}},
		Body: []formula.AtomicFormula{
			{Predicate: "p", Args: []formula.Term{x}},
			{Predicate: "q", Args: []formula.Term{x}},
		},
	}
	cs, err := MakeCNF(context.Background(), []Input{FromDefiniteClause(d)}, formula.ConstantsSet{})
	if err != nil {
		t.Fatalf("MakeCNF: %v", err)
	}
	if cs.Len() != 1 {
		t.Fatalf("expected 1 clause, got %d", cs.Len())
	}
	if len(cs.Slice()[0].Literals.Slice()) != 3 {
		t.Errorf("expected 3 literals (2 negative body, 1 positive head), got %d", len(cs.Slice()[0].Literals.Slice()))
	}
}

func TestMakeCNFIsIdempotentAtClauseSetLevel(t *testing.T) {
	f := formula.Or{Left: atomicF("A"), Right: atomicF("B")}
	first, err := MakeCNF(context.Background(), []Input{FromFormula(f)}, formula.ConstantsSet{})
	if err != nil {
		t.Fatalf("MakeCNF: %v", err)
	}

	var reInputs []Input
	for _, c := range first.Slice() {
		lits := c.Literals.Slice()
		fs := make([]formula.FormulaConstruct, len(lits))
		for i, l := range lits {
			if l.Negated {
				fs[i] = formula.Not{Operand: formula.Atomic{Atom: l.Atom}}
			} else {
				fs[i] = formula.Atomic{Atom: l.Atom}
			}
		}
		reInputs = append(reInputs, FromWeighted(c.Weight, formula.Or2(fs...)))
	}

	second, err := MakeCNF(context.Background(), reInputs, formula.ConstantsSet{})
	if err != nil {
		t.Fatalf("MakeCNF (second pass): %v", err)
	}
	if second.Len() != first.Len() {
		t.Errorf("expected idempotence, got %d clauses first pass, %d second pass", first.Len(), second.Len())
	}
}

func TestMakeCNFPropagatesSchemaError(t *testing.T) {
	v := formula.Variable{Name: "x", Domain: "missing"}
	f := formula.Exists{Var: v, Body: atomicF("p", v)}
	_, err := MakeCNF(context.Background(), []Input{FromFormula(f)}, formula.ConstantsSet{})
	if !errors.Is(err, mlnerr.ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
}
