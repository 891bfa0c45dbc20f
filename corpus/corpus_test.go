package corpus

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaCreationIdempotent(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "corpus.db")

	for i := 0; i < 3; i++ {
		s, err := Open(ctx, dbPath)
		require.NoErrorf(t, err, "Open iteration %d", i)
		require.NoErrorf(t, s.Close(), "Close iteration %d", i)
	}
}

func TestFormulaFixtureRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	defer s.Close()

	fixture := FormulaFixture{
		Name:            "s2-and-or-and",
		PrefixCodes:     []int{0, 1, 2, 3, 1, 4, 5},
		AtomLabels:      map[int]string{2: "+a(x)", 3: "+b(x)", 4: "+c(x)", 5: "+d(x)"},
		ExpectedClauses: []string{"a(x) v c(x)", "a(x) v d(x)", "b(x) v c(x)", "b(x) v d(x)"},
	}
	require.NoError(t, s.SaveFormulaFixture(ctx, fixture))

	got, err := s.LoadFormulaFixture(ctx, "s2-and-or-and")
	require.NoError(t, err)
	assert.Equal(t, fixture.PrefixCodes, got.PrefixCodes, "prefix codes did not round-trip")
	assert.Equal(t, fixture.ExpectedClauses, got.ExpectedClauses, "expected clauses did not round-trip")
	assert.Equal(t, fixture.AtomLabels, got.AtomLabels, "atom labels did not round-trip")
}

func TestFormulaFixtureUpsert(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	defer s.Close()

	first := FormulaFixture{Name: "dup", PrefixCodes: []int{2}, ExpectedClauses: []string{"a(x)"}}
	second := FormulaFixture{Name: "dup", PrefixCodes: []int{3}, ExpectedClauses: []string{"b(x)"}}
	require.NoError(t, s.SaveFormulaFixture(ctx, first))
	require.NoError(t, s.SaveFormulaFixture(ctx, second))

	got, err := s.LoadFormulaFixture(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, second.PrefixCodes, got.PrefixCodes, "upsert did not overwrite")
}

func TestPathFixtureRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	defer s.Close()

	fixture := PathFixture{
		Name: "s5-parent-chain",
		Elements: []PathElementFixture{
			{AtomID: 1, Predicate: "parent", Arity: 2},
			{AtomID: 2, Predicate: "parent", Arity: 2},
			{AtomID: 3, Predicate: "grandparent", Arity: 2},
		},
		Kind: "definite",
	}
	require.NoError(t, s.SavePathFixture(ctx, fixture))

	got, err := s.LoadPathFixture(ctx, "s5-parent-chain")
	require.NoError(t, err)
	assert.Equal(t, "definite", got.Kind, "kind did not round-trip")
	assert.Equal(t, fixture.Elements, got.Elements, "elements did not round-trip")
}

func TestLoadMissingFixture(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.LoadFormulaFixture(ctx, "missing")
	assert.Error(t, err, "expected error loading missing formula fixture")

	_, err = s.LoadPathFixture(ctx, "missing")
	assert.Error(t, err, "expected error loading missing path fixture")
}
