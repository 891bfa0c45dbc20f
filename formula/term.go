// Package formula holds the algebraic representation of first-order formulas,
// literals, atoms, and terms used across the clause constructor: normalizer,
// hybrid distributor, path variabilizer, and clause builders all operate on
// these shapes.
package formula

import (
	"fmt"
	"strings"
)

// Domain names a value domain, e.g. "obj" or "person". Placemarkers and
// constants sets are keyed by Domain.
type Domain string

// Term is the tagged sum {Constant, Variable, Function}. Matching on the
// concrete type is exhaustive by construction; there is no fourth variant.
type Term interface {
	isTerm()
	String() string
}

// Constant is a ground symbol.
type Constant struct {
	Symbol string
}

func (Constant) isTerm()          {}
func (c Constant) String() string { return c.Symbol }

// Variable is a named placeholder scoped to a domain.
type Variable struct {
	Name   string
	Domain Domain
}

func (Variable) isTerm()          {}
func (v Variable) String() string { return v.Name }

// Function is a symbol applied to argument terms.
type Function struct {
	Symbol string
	Args   []Term
}

func (Function) isTerm() {}
func (f Function) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.Symbol, strings.Join(args, ", "))
}

// Signature identifies a predicate by symbol and arity.
type Signature struct {
	Predicate string
	Arity     int
}

func (s Signature) String() string { return fmt.Sprintf("%s/%d", s.Predicate, s.Arity) }

// AtomicFormula is a predicate symbol applied to ordered terms.
type AtomicFormula struct {
	Predicate string
	Args      []Term
}

// Signature returns the (predicate, arity) pair identifying this atom's shape.
func (a AtomicFormula) Signature() Signature {
	return Signature{Predicate: a.Predicate, Arity: len(a.Args)}
}

func (a AtomicFormula) String() string {
	if len(a.Args) == 0 {
		return a.Predicate
	}
	args := make([]string, len(a.Args))
	for i, t := range a.Args {
		args[i] = t.String()
	}
	return fmt.Sprintf("%s(%s)", a.Predicate, strings.Join(args, ", "))
}

// Equal reports structural equality (no renaming) between two atoms.
func (a AtomicFormula) Equal(other AtomicFormula) bool {
	if a.Predicate != other.Predicate || len(a.Args) != len(other.Args) {
		return false
	}
	for i := range a.Args {
		if a.Args[i].String() != other.Args[i].String() {
			return false
		}
	}
	return true
}

// Literal is a polarity-tagged atom: an atom or its negation. Per the data
// model invariant, a Literal never wraps a nested connective.
type Literal struct {
	Atom    AtomicFormula
	Negated bool
}

// Positive builds a positive literal from an atom.
func Positive(a AtomicFormula) Literal { return Literal{Atom: a, Negated: false} }

// Negative builds a negative literal from an atom.
func Negative(a AtomicFormula) Literal { return Literal{Atom: a, Negated: true} }

// Negate returns the complementary literal.
func (l Literal) Negate() Literal { return Literal{Atom: l.Atom, Negated: !l.Negated} }

func (l Literal) String() string {
	if l.Negated {
		return "¬" + l.Atom.String()
	}
	return "+" + l.Atom.String()
}

// key is a renaming-sensitive identity used by set containers; two literals
// referencing the same variable name compare equal under key, which is
// exactly what we want prior to canonicalization.
func (l Literal) key() string { return fmt.Sprintf("%v:%s", l.Negated, l.Atom.String()) }
