// Package corpus persists a regression fixture set — formulas and hyperpaths
// exercised by the clause constructor's test harness — in a SQLite database,
// so replay runs don't depend on regenerating fixtures from scratch.
package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store is a fixture corpus backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) a fixture database at path, in WAL mode.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL on %s: %w", path, err)
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

func initSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS formula_fixtures (
	name TEXT PRIMARY KEY,
	prefix_codes TEXT NOT NULL,
	atom_labels TEXT NOT NULL,
	expected_clauses TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS path_fixtures (
	name TEXT PRIMARY KEY,
	elements TEXT NOT NULL,
	kind TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// FormulaFixture pairs an integer-encoded NNF formula with its expected
// distributed-and-extracted clause strings, keyed by name for replay.
type FormulaFixture struct {
	Name        string
	PrefixCodes []int
	// AtomLabels maps an atom code (as it appears in PrefixCodes) to a
	// polarity-tagged predicate label such as "+a(x)" or "-b(x)", letting a
	// fixture be decoded back into literals without needing the original
	// Encoder that produced the codes.
	AtomLabels      map[int]string
	ExpectedClauses []string
}

// SaveFormulaFixture inserts or replaces a named formula fixture.
func (s *Store) SaveFormulaFixture(ctx context.Context, f FormulaFixture) error {
	codes, err := json.Marshal(f.PrefixCodes)
	if err != nil {
		return fmt.Errorf("marshaling prefix codes: %w", err)
	}
	labels, err := json.Marshal(f.AtomLabels)
	if err != nil {
		return fmt.Errorf("marshaling atom labels: %w", err)
	}
	clauses, err := json.Marshal(f.ExpectedClauses)
	if err != nil {
		return fmt.Errorf("marshaling expected clauses: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO formula_fixtures (name, prefix_codes, atom_labels, expected_clauses)
VALUES (?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
	prefix_codes=excluded.prefix_codes,
	atom_labels=excluded.atom_labels,
	expected_clauses=excluded.expected_clauses;
`, f.Name, string(codes), string(labels), string(clauses))
	return err
}

// LoadFormulaFixture retrieves a named formula fixture.
func (s *Store) LoadFormulaFixture(ctx context.Context, name string) (FormulaFixture, error) {
	var codes, labels, clauses string
	err := s.db.QueryRowContext(ctx,
		`SELECT prefix_codes, atom_labels, expected_clauses FROM formula_fixtures WHERE name=?`, name,
	).Scan(&codes, &labels, &clauses)
	if err != nil {
		return FormulaFixture{}, fmt.Errorf("loading fixture %s: %w", name, err)
	}

	f := FormulaFixture{Name: name}
	if err := json.Unmarshal([]byte(codes), &f.PrefixCodes); err != nil {
		return FormulaFixture{}, fmt.Errorf("decoding prefix codes for %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(labels), &f.AtomLabels); err != nil {
		return FormulaFixture{}, fmt.Errorf("decoding atom labels for %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(clauses), &f.ExpectedClauses); err != nil {
		return FormulaFixture{}, fmt.Errorf("decoding expected clauses for %s: %w", name, err)
	}
	return f, nil
}

// PathElementFixture mirrors formula.PathElement in a JSON-friendly shape.
type PathElementFixture struct {
	AtomID    int    `json:"atom_id"`
	Predicate string `json:"predicate"`
	Arity     int    `json:"arity"`
}

// PathFixture is a named hyperpath together with the walk orientation
// ("clausal" or "definite") it was recorded for.
type PathFixture struct {
	Name     string
	Elements []PathElementFixture
	Kind     string
}

// SavePathFixture inserts or replaces a named path fixture.
func (s *Store) SavePathFixture(ctx context.Context, f PathFixture) error {
	elems, err := json.Marshal(f.Elements)
	if err != nil {
		return fmt.Errorf("marshaling path elements: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO path_fixtures (name, elements, kind)
VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
	elements=excluded.elements,
	kind=excluded.kind;
`, f.Name, string(elems), f.Kind)
	return err
}

// LoadPathFixture retrieves a named path fixture.
func (s *Store) LoadPathFixture(ctx context.Context, name string) (PathFixture, error) {
	var elems, kind string
	err := s.db.QueryRowContext(ctx,
		`SELECT elements, kind FROM path_fixtures WHERE name=?`, name,
	).Scan(&elems, &kind)
	if err != nil {
		return PathFixture{}, fmt.Errorf("loading path fixture %s: %w", name, err)
	}

	f := PathFixture{Name: name, Kind: kind}
	if err := json.Unmarshal([]byte(elems), &f.Elements); err != nil {
		return PathFixture{}, fmt.Errorf("decoding path elements for %s: %w", name, err)
	}
	return f, nil
}
