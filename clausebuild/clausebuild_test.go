package clausebuild

import (
	"testing"

	"mlnforge/formula"
	"mlnforge/funcintro"
)

type stubEvidence map[int][]string

func (s stubEvidence) Decode(atomID int) ([]string, error) { return s[atomID], nil }

func sig(pred string, arity int) formula.Signature {
	return formula.Signature{Predicate: pred, Arity: arity}
}

func testFixture() (formula.PredicateSchema, formula.ModeDeclarations, formula.Evidence, formula.HPath) {
	schema := formula.PredicateSchema{
		sig("friend", 2): {"obj", "obj"},
		sig("smokes", 1): {"obj"},
	}
	modes := formula.ModeDeclarations{
		sig("friend", 2): {{}, {}},
		sig("smokes", 1): {{}},
	}
	evidence := formula.Evidence{
		sig("friend", 2): stubEvidence{1: {"alice", "bob"}},
		sig("smokes", 1): stubEvidence{2: {"bob"}},
	}
	path := formula.HPath{
		{AtomID: 1, Signature: sig("friend", 2)},
		{AtomID: 2, Signature: sig("smokes", 1)},
	}
	return schema, modes, evidence, path
}

func TestClausesBothProducesHornAndConjunctionTwins(t *testing.T) {
	schema, modes, evidence, path := testFixture()
	out, err := Clauses([]formula.HPath{path}, schema, modes, evidence, Both, nil)
	if err != nil {
		t.Fatalf("Clauses: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 clauses (conjunction + horn), got %d", len(out))
	}

	var sawPositiveHead, sawNegativeHead bool
	for _, c := range out {
		for _, l := range c.Literals.Slice() {
			if l.Atom.Predicate == "smokes" {
				if l.Negated {
					sawNegativeHead = true
				} else {
					sawPositiveHead = true
				}
			}
		}
	}
	if !sawPositiveHead || !sawNegativeHead {
		t.Errorf("expected one clause with a positive smokes head and one with a negative smokes head")
	}
}

func TestClausesDeduplicatesAgainstPreexisting(t *testing.T) {
	schema, modes, evidence, path := testFixture()
	first, err := Clauses([]formula.HPath{path}, schema, modes, evidence, Conjunction, nil)
	if err != nil {
		t.Fatalf("Clauses: %v", err)
	}
	second, err := Clauses([]formula.HPath{path}, schema, modes, evidence, Conjunction, first)
	if err != nil {
		t.Fatalf("Clauses (second call): %v", err)
	}
	if len(second) != 0 {
		t.Errorf("expected preexisting clauses to suppress duplicates, got %d", len(second))
	}
}

func TestClausesPropagatesVariabilizerError(t *testing.T) {
	path := formula.HPath{{AtomID: 99, Signature: sig("missing", 1)}}
	_, err := Clauses([]formula.HPath{path}, formula.PredicateSchema{}, formula.ModeDeclarations{}, formula.Evidence{}, Both, nil)
	if err == nil {
		t.Error("expected an error for a path referencing an unknown signature")
	}
}

func TestDefiniteClausesBuildsHeadAndBody(t *testing.T) {
	schema, modes, evidence, path := testFixture()
	out, err := DefiniteClauses([]formula.HPath{path}, schema, modes, evidence, nil, DefiniteOptions{}, funcintro.Identity{})
	if err != nil {
		t.Fatalf("DefiniteClauses: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("expected 1 definite clause, got %d", out.Len())
	}
	wdc := out.Slice()[0]
	// WalkDefinite makes the path's original first element (friend/2) the
	// head, walking the rest of the path in reverse as the body.
	if wdc.Clause.Head.Predicate != "friend" {
		t.Errorf("expected head predicate friend, got %s", wdc.Clause.Head.Predicate)
	}
	if len(wdc.Clause.Body) != 1 || wdc.Clause.Body[0].Predicate != "smokes" {
		t.Errorf("expected a single smokes/1 body atom, got %v", wdc.Clause.Body)
	}
	// bob is shared between friend(alice, bob) and smokes(bob); they must
	// resolve to the same variable.
	if wdc.Clause.Head.Args[1] != wdc.Clause.Body[0].Args[0] {
		t.Errorf("expected the shared constant bob to reuse the same variable in head and body")
	}
}

func TestDefiniteClausesRequireDistinctHeadTermsFiltersRepeatedVariable(t *testing.T) {
	schema := formula.PredicateSchema{sig("selfloop", 2): {"obj", "obj"}}
	modes := formula.ModeDeclarations{sig("selfloop", 2): {{}, {}}}
	evidence := formula.Evidence{sig("selfloop", 2): stubEvidence{1: {"bob", "bob"}}}
	path := formula.HPath{{AtomID: 1, Signature: sig("selfloop", 2)}}

	out, err := DefiniteClauses([]formula.HPath{path}, schema, modes, evidence, nil,
		DefiniteOptions{RequireDistinctHeadTerms: true}, funcintro.Identity{})
	if err != nil {
		t.Fatalf("DefiniteClauses: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected the repeated-variable head to be filtered out, got %d clauses", out.Len())
	}
}

func TestDefiniteClausesDeduplicatesAgainstPreexisting(t *testing.T) {
	schema, modes, evidence, path := testFixture()
	first, err := DefiniteClauses([]formula.HPath{path}, schema, modes, evidence, nil, DefiniteOptions{}, funcintro.Identity{})
	if err != nil {
		t.Fatalf("DefiniteClauses: %v", err)
	}
	second, err := DefiniteClauses([]formula.HPath{path}, schema, modes, evidence, first, DefiniteOptions{}, funcintro.Identity{})
	if err != nil {
		t.Fatalf("DefiniteClauses (second call): %v", err)
	}
	if second.Len() != 0 {
		t.Errorf("expected preexisting definite clauses to suppress duplicates, got %d", second.Len())
	}
}
