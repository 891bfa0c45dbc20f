package normalize

import (
	"errors"
	"testing"

	"mlnforge/formula"
	"mlnforge/mlnerr"
)

func atomic(pred string, args ...formula.Term) formula.FormulaConstruct {
	return formula.Atomic{Atom: formula.AtomicFormula{Predicate: pred, Args: args}}
}

func TestRemoveImplicationsRewritesImplies(t *testing.T) {
	f := formula.Implies{Left: atomic("p"), Right: atomic("q")}
	got := RemoveImplications(f)
	or, ok := got.(formula.Or)
	if !ok {
		t.Fatalf("expected Or, got %T", got)
	}
	if _, ok := or.Left.(formula.Not); !ok {
		t.Errorf("expected left operand to be negated, got %T", or.Left)
	}
}

func TestRemoveImplicationsRewritesIff(t *testing.T) {
	f := formula.Iff{Left: atomic("p"), Right: atomic("q")}
	got := RemoveImplications(f)
	if _, ok := got.(formula.And); !ok {
		t.Fatalf("expected And, got %T", got)
	}
}

func TestToNNFPushesNegationThroughAnd(t *testing.T) {
	f := formula.Not{Operand: formula.And{Left: atomic("p"), Right: atomic("q")}}
	got := ToNNF(f)
	or, ok := got.(formula.Or)
	if !ok {
		t.Fatalf("expected Or (De Morgan), got %T", got)
	}
	if _, ok := or.Left.(formula.Not); !ok {
		t.Errorf("expected negation pushed onto left atom")
	}
}

func TestToNNFCancelsDoubleNegation(t *testing.T) {
	f := formula.Not{Operand: formula.Not{Operand: atomic("p")}}
	got := ToNNF(f)
	if _, ok := got.(formula.Atomic); !ok {
		t.Errorf("expected double negation to cancel to a bare atom, got %T", got)
	}
}

func TestStandardizeVariablesGivesEachQuantifierAUniqueName(t *testing.T) {
	v := formula.Variable{Name: "x", Domain: "obj"}
	f := formula.And{
		Left:  formula.Exists{Var: v, Body: atomic("p", v)},
		Right: formula.Exists{Var: v, Body: atomic("q", v)},
	}
	got := StandardizeVariables(f).(formula.And)
	left := got.Left.(formula.Exists)
	right := got.Right.(formula.Exists)
	if left.Var.Name == right.Var.Name {
		t.Errorf("expected distinct binder names, both got %q", left.Var.Name)
	}
}

func TestEliminateExistentialsExpandsOverDomain(t *testing.T) {
	v := formula.Variable{Name: "x", Domain: "obj"}
	f := formula.Exists{Var: v, Body: atomic("p", v)}
	constants := formula.ConstantsSet{"obj": {"a", "b", "c"}}

	got, err := EliminateExistentials(f, constants)
	if err != nil {
		t.Fatalf("EliminateExistentials: %v", err)
	}
	or1, ok := got.(formula.Or)
	if !ok {
		t.Fatalf("expected a disjunction over the domain, got %T", got)
	}
	or2, ok := or1.Right.(formula.Or)
	if !ok {
		t.Fatalf("expected a 3-way disjunction, got %T", or1.Right)
	}
	_ = or2
}

func TestEliminateExistentialsFailsForMissingDomain(t *testing.T) {
	v := formula.Variable{Name: "x", Domain: "obj"}
	f := formula.Exists{Var: v, Body: atomic("p", v)}

	_, err := EliminateExistentials(f, formula.ConstantsSet{})
	if !errors.Is(err, mlnerr.ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
}

func TestDropUniversalsDiscardsForAll(t *testing.T) {
	v := formula.Variable{Name: "x", Domain: "obj"}
	f := formula.ForAll{Var: v, Body: atomic("p", v)}
	got := DropUniversals(f)
	if _, ok := got.(formula.Atomic); !ok {
		t.Errorf("expected the ForAll wrapper to be dropped, got %T", got)
	}
}

func TestNormalizeFullPipeline(t *testing.T) {
	// head(x) <= p(x) ^ q(x), expressed as p(x) ^ q(x) => head(x)
	x := formula.Variable{Name: "x", Domain: "obj"}
	body := formula.And{Left: atomic("p", x), Right: atomic("q", x)}
	f := formula.Implies{Left: body, Right: atomic("head", x)}

	got, err := Normalize(f, formula.ConstantsSet{"obj": {"a"}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	// Expect NNF: (-p(x) v -q(x)) v head(x), i.e. an Or whose left is an Or of Nots
	top, ok := got.(formula.Or)
	if !ok {
		t.Fatalf("expected top-level Or, got %T", got)
	}
	left, ok := top.Left.(formula.Or)
	if !ok {
		t.Fatalf("expected left operand to be an Or of negated conjuncts, got %T", top.Left)
	}
	if _, ok := left.Left.(formula.Not); !ok {
		t.Errorf("expected negated body literal, got %T", left.Left)
	}
}
