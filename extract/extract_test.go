package extract

import (
	"testing"

	"mlnforge/formula"
)

func atomicF(pred string, args ...formula.Term) formula.FormulaConstruct {
	return formula.Atomic{Atom: formula.AtomicFormula{Predicate: pred, Args: args}}
}

func TestClausesSplitsTopLevelConjunction(t *testing.T) {
	// (A v B) ^ (C v D)
	f := formula.And{
		Left:  formula.Or{Left: atomicF("A"), Right: atomicF("B")},
		Right: formula.Or{Left: atomicF("C"), Right: atomicF("D")},
	}
	out := Clauses(f, formula.HardWeight())
	if len(out) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(out))
	}
	for _, c := range out {
		if len(c.Literals.Slice()) != 2 {
			t.Errorf("expected each clause to keep both disjuncts, got %d literals", len(c.Literals.Slice()))
		}
	}
}

func TestClausesDropsTautology(t *testing.T) {
	// (A v -A) ^ (B v C): the first conjunct is a tautology and must be dropped
	f := formula.And{
		Left:  formula.Or{Left: atomicF("A"), Right: formula.Not{Operand: atomicF("A")}},
		Right: formula.Or{Left: atomicF("B"), Right: atomicF("C")},
	}
	out := Clauses(f, formula.HardWeight())
	if len(out) != 1 {
		t.Fatalf("expected the tautology to be dropped, leaving 1 clause, got %d", len(out))
	}
	lits := out[0].Literals.Slice()
	if len(lits) != 2 {
		t.Fatalf("expected the surviving clause to have 2 literals, got %d", len(lits))
	}
}

func TestClausesDropsDuplicateConjunctsWithinACall(t *testing.T) {
	// (A v B) ^ (B v A): same clause written twice with swapped literal order
	f := formula.And{
		Left:  formula.Or{Left: atomicF("A"), Right: atomicF("B")},
		Right: formula.Or{Left: atomicF("B"), Right: atomicF("A")},
	}
	out := Clauses(f, formula.HardWeight())
	if len(out) != 1 {
		t.Fatalf("expected duplicate conjuncts to collapse to 1 clause, got %d", len(out))
	}
}

func TestClausesSingleLiteralConjunct(t *testing.T) {
	f := atomicF("A")
	out := Clauses(f, formula.HardWeight())
	if len(out) != 1 || len(out[0].Literals.Slice()) != 1 {
		t.Fatalf("expected a single unit clause, got %v", out)
	}
}

func TestClausesPreservesWeight(t *testing.T) {
	f := formula.Or{Left: atomicF("A"), Right: atomicF("B")}
	w := formula.SoftWeight(2.5)
	out := Clauses(f, w)
	if len(out) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(out))
	}
	if out[0].Weight.Hard {
		t.Errorf("expected a soft weight to be preserved, got hard")
	}
}

func TestClausesPanicsOnMalformedDisjunct(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a conjunct that is not a disjunction of literals")
		}
	}()
	v := formula.Variable{Name: "x", Domain: "obj"}
	// A top-level conjunct that is neither a literal nor an Or of literals.
	bad := formula.And{
		Left:  atomicF("A"),
		Right: formula.Exists{Var: v, Body: atomicF("p", v)},
	}
	Clauses(bad, formula.HardWeight())
}
