package solverdemo

import (
	"testing"

	"mlnforge/formula"
)

func atom(name string) formula.AtomicFormula {
	return formula.AtomicFormula{Predicate: name}
}

func TestDiagnoseSatisfiableReturnsNil(t *testing.T) {
	cs := formula.NewClauseSet()
	cs.Add(formula.NewClause(formula.HardWeight(), formula.Positive(atom("p"))))
	cs.Add(formula.NewClause(formula.HardWeight(), formula.Positive(atom("q"))))

	diagnoses, err := Diagnose(cs)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if diagnoses != nil {
		t.Errorf("expected no diagnoses for a satisfiable hard set, got %v", diagnoses)
	}
}

func TestDiagnoseFindsDirectContradiction(t *testing.T) {
	cs := formula.NewClauseSet()
	cs.Add(formula.NewClause(formula.HardWeight(), formula.Positive(atom("p"))))
	cs.Add(formula.NewClause(formula.HardWeight(), formula.Negative(atom("p"))))

	diagnoses, err := Diagnose(cs)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if len(diagnoses) != 1 {
		t.Fatalf("expected 1 conflict component, got %d", len(diagnoses))
	}

	d := diagnoses[0]
	if len(d.MinimalUnsatisfiable) != 1 {
		t.Fatalf("expected 1 MUS, got %d", len(d.MinimalUnsatisfiable))
	}
	if len(d.MinimalUnsatisfiable[0]) != 2 {
		t.Errorf("expected the MUS to contain both clauses, got %d", len(d.MinimalUnsatisfiable[0]))
	}
	if len(d.Critical) != 2 {
		t.Errorf("expected 2 critical clauses, got %d", len(d.Critical))
	}
}

func TestDiagnoseIgnoresSoftClauses(t *testing.T) {
	cs := formula.NewClauseSet()
	cs.Add(formula.NewClause(formula.SoftWeight(1.0), formula.Positive(atom("p"))))
	cs.Add(formula.NewClause(formula.SoftWeight(1.0), formula.Negative(atom("p"))))

	diagnoses, err := Diagnose(cs)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if diagnoses != nil {
		t.Errorf("expected no diagnoses when only soft clauses conflict, got %v", diagnoses)
	}
}
