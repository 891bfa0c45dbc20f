package formula

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// LiteralSet is a deduplicated, order-independent collection of literals.
// Literal itself embeds a slice-bearing AtomicFormula and so is not a
// `comparable` type parameter for golang-set; LiteralSet instead keeps the
// canonical string key in a mapset.Set[string] (mirroring the teacher's
// IntSet-over-mapset idiom for propositional variables) alongside a lookup
// table back to the literal values.
type LiteralSet struct {
	keys  mapset.Set[string]
	byKey map[string]Literal
}

// NewLiteralSet builds a LiteralSet from zero or more literals.
func NewLiteralSet(lits ...Literal) LiteralSet {
	s := LiteralSet{keys: mapset.NewSet[string](), byKey: make(map[string]Literal, len(lits))}
	for _, l := range lits {
		s.Add(l)
	}
	return s
}

// Add inserts a literal, returning false if it was already present.
func (s LiteralSet) Add(l Literal) bool {
	k := l.key()
	if s.keys.Contains(k) {
		return false
	}
	s.keys.Add(k)
	s.byKey[k] = l
	return true
}

// Contains reports whether the exact literal (same polarity, same atom) is present.
func (s LiteralSet) Contains(l Literal) bool { return s.keys.Contains(l.key()) }

// ContainsAtom reports whether either polarity of the atom is present, and
// if so with which polarity.
func (s LiteralSet) ContainsAtom(a AtomicFormula) (Literal, bool) {
	if s.keys.Contains(Positive(a).key()) {
		return Positive(a), true
	}
	if s.keys.Contains(Negative(a).key()) {
		return Negative(a), true
	}
	return Literal{}, false
}

// Cardinality returns the number of distinct literals.
func (s LiteralSet) Cardinality() int { return s.keys.Cardinality() }

// Clone returns an independent copy.
func (s LiteralSet) Clone() LiteralSet {
	out := NewLiteralSet()
	for k, v := range s.byKey {
		out.keys.Add(k)
		out.byKey[k] = v
	}
	return out
}

// Slice returns the literals in a deterministic (sorted by key) order.
func (s LiteralSet) Slice() []Literal {
	keys := s.keys.ToSlice()
	sort.Strings(keys)
	out := make([]Literal, len(keys))
	for i, k := range keys {
		out[i] = s.byKey[k]
	}
	return out
}

// IsTautology reports whether the set contains both polarities of any atom.
func (s LiteralSet) IsTautology() bool {
	for _, l := range s.byKey {
		if s.keys.Contains(l.Negate().key()) {
			return true
		}
	}
	return false
}

// Clause is a disjunction of literals carrying a weight.
type Clause struct {
	Literals LiteralSet
	Weight   Weight
}

// NewClause builds a clause from a weight and literals.
func NewClause(w Weight, lits ...Literal) Clause {
	return Clause{Literals: NewLiteralSet(lits...), Weight: w}
}

// IsTautology reports whether the clause contains a literal and its negation.
func (c Clause) IsTautology() bool { return c.Literals.IsTautology() }

func (c Clause) String() string {
	lits := c.Literals.Slice()
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ∨ ")
}

// DefiniteClause is a Horn clause with a conjunctive body, written
// head <- body. The body is empty for a clause built from a path of length
// one.
type DefiniteClause struct {
	Head AtomicFormula
	Body []AtomicFormula
}

// BodyFormula rebuilds the body as a right-associated conjunction of atoms,
// or nil for an empty body (path of length one).
func (d DefiniteClause) BodyFormula() FormulaConstruct {
	if len(d.Body) == 0 {
		return nil
	}
	fs := make([]FormulaConstruct, len(d.Body))
	for i, a := range d.Body {
		fs[i] = Atomic{Atom: a}
	}
	return And2(fs...)
}

func (d DefiniteClause) String() string {
	parts := make([]string, len(d.Body))
	for i, a := range d.Body {
		parts[i] = a.String()
	}
	return d.Head.String() + " <- " + strings.Join(parts, ", ")
}

// WeightedDefiniteClause pairs a weight with a definite clause.
type WeightedDefiniteClause struct {
	Weight Weight
	Clause DefiniteClause
}
