// Package prologfmt renders compiled clauses and definite clauses as Prolog
// source text, and validates the rendered text two ways: a lightweight term
// grammar (github.com/alecthomas/participle/v2) that catches malformed atoms
// before ever starting an interpreter, and a full consult against an
// embedded github.com/ichiban/prolog interpreter for programs that must
// actually load.
package prologfmt

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ichiban/prolog"

	"mlnforge/formula"
)

// ErrSyntax is the sentinel wrapped by every validation failure this package
// reports, whether caught by the term grammar or by the interpreter's own
// consult error.
var ErrSyntax = errors.New("prologfmt: invalid prolog syntax")

// RenderTerm renders a formula.Term as a Prolog term. Constants become atoms
// (quoted if they don't already look like one), variables are capitalized so
// the interpreter reads them as variables rather than atoms, and functions
// become compound terms.
func RenderTerm(t formula.Term) string {
	switch v := t.(type) {
	case formula.Constant:
		return quoteAtom(v.Symbol)
	case formula.Variable:
		return capitalize(v.Name)
	case formula.Function:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = RenderTerm(a)
		}
		return fmt.Sprintf("%s(%s)", quoteAtom(v.Symbol), strings.Join(args, ", "))
	default:
		panic(fmt.Sprintf("prologfmt: unhandled term type %T", t))
	}
}

// RenderAtom renders a predicate application, e.g. "friend(alice, Vp1)".
func RenderAtom(a formula.AtomicFormula) string {
	if len(a.Args) == 0 {
		return quoteAtom(a.Predicate)
	}
	args := make([]string, len(a.Args))
	for i, t := range a.Args {
		args[i] = RenderTerm(t)
	}
	return fmt.Sprintf("%s(%s)", quoteAtom(a.Predicate), strings.Join(args, ", "))
}

// RenderLiteral renders a polarity-tagged atom using Prolog's negation as
// failure operator for a negated literal.
func RenderLiteral(l formula.Literal) string {
	if l.Negated {
		return "\\+ " + RenderAtom(l.Atom)
	}
	return RenderAtom(l.Atom)
}

// RenderClause renders a disjunctive clause as a Prolog fact whose body is
// the ';'-separated disjunction of its literals, terminated with a period. A
// unit clause renders as a plain fact. Soft clauses carry their weight as a
// trailing line comment; the clause body itself has no notion of weight.
func RenderClause(c formula.Clause) string {
	lits := c.Literals.Slice()
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = RenderLiteral(l)
	}
	body := strings.Join(parts, " ; ")
	if len(lits) == 0 {
		body = "fail"
	}
	line := body + "."
	if !c.Weight.Hard {
		line += fmt.Sprintf(" %% weight %s", c.Weight)
	}
	return line
}

// RenderDefiniteClause renders a Horn clause as "head :- body." (or a plain
// fact "head." for an empty body, i.e. a path of length one).
func RenderDefiniteClause(d formula.DefiniteClause) string {
	if len(d.Body) == 0 {
		return RenderAtom(d.Head) + "."
	}
	body := make([]string, len(d.Body))
	for i, a := range d.Body {
		body[i] = RenderAtom(a)
	}
	return fmt.Sprintf("%s :- %s.", RenderAtom(d.Head), strings.Join(body, ", "))
}

// RenderClauseSet renders every member of cs, one clause per line, in the
// set's insertion order.
func RenderClauseSet(cs *formula.ClauseSet) string {
	var b strings.Builder
	for _, c := range cs.Slice() {
		b.WriteString(RenderClause(c))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderDefiniteClauseSet renders every member of a definite clause set, one
// rule per line, weight annotated the same way RenderClause does.
func RenderDefiniteClauseSet(cs *formula.WeightedDefiniteClauseSet) string {
	var b strings.Builder
	for _, wdc := range cs.Slice() {
		line := RenderDefiniteClause(wdc.Clause)
		if !wdc.Weight.Hard {
			line = strings.TrimSuffix(line, ".") + fmt.Sprintf(". %% weight %s", wdc.Weight)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// ValidateTerm parses a single rendered term against the Prolog term grammar,
// catching malformed atoms and mismatched parentheses without starting an
// interpreter. It is meant for spot-checking one RenderAtom/RenderTerm result.
func ValidateTerm(rendered string) error {
	if _, err := ParseTerm(rendered); err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return nil
}

// Validate consults program against a fresh interpreter, returning a wrapped
// ErrSyntax if the interpreter rejects it. A successful Validate does not
// imply the program's clauses are logically sound, only that they parse and
// load.
func Validate(program string) error {
	interp := prolog.New(nil, nil)
	if err := interp.Exec(program); err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return nil
}

func capitalize(name string) string {
	if name == "" {
		return "_"
	}
	r := []rune(name)
	if unicode.IsUpper(r[0]) || r[0] == '_' {
		return name
	}
	if unicode.IsLower(r[0]) {
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	}
	return "V" + name
}

// quoteAtom wraps s in single quotes unless it is already a valid unquoted
// Prolog atom (starts lowercase, holds only alphanumerics and underscore).
func quoteAtom(s string) string {
	if isBareAtom(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "\\'") + "'"
}

func isBareAtom(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	if !unicode.IsLower(r[0]) {
		return false
	}
	for _, c := range r[1:] {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			return false
		}
	}
	return true
}
