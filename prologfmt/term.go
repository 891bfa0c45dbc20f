package prologfmt

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Term is the parse tree produced by ParseTerm: one of Var, Atom, Compound,
// or List, matching what a rendered clause literal can contain.
type Term interface {
	term()
}

// Var is a capitalized Prolog variable reference.
type Var struct {
	Value string `@Var`
}

// Atom is a bare or quoted Prolog constant.
type Atom struct {
	Value string `@Atom`
}

// Compound is a functor applied to one or more argument terms.
type Compound struct {
	Value string `@Atom`
	Args  []Term `"(" @@ ( "," @@)* ")"`
}

// List is a bracketed Prolog list, e.g. "[a, b, c]".
type List struct {
	Values []Term `"[" (@@ ( "," @@)*)? "]"`
}

func (Var) term()      {}
func (Atom) term()     {}
func (List) term()     {}
func (Compound) term() {}

type parsedTerm struct {
	Term Term `@@`
}

var termLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Atom", Pattern: `'[^']*'|\\\+|[a-z]+[a-zA-Z_0-9]*`},
	{Name: "Var", Pattern: `[A-Z_][a-zA-Z_0-9]*`},
	{Name: "Punct", Pattern: `[-\[\]!@#$%^&*()+={}|:;"'<,>.?/]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var termParser = participle.MustBuild[parsedTerm](
	participle.Union[Term](Compound{}, Var{}, Atom{}, List{}),
	participle.Lexer(termLexer),
	participle.Elide("Whitespace"),
)

// ParseTerm parses a single Prolog term (an atom, variable, compound, or
// list) from s. s must hold the term alone: trailing text such as the
// ":- body" or clause-terminating period that RenderDefiniteClause and
// RenderClause add around a term is a parse error.
func ParseTerm(s string) (Term, error) {
	g, err := termParser.ParseString("", s)
	if err != nil {
		return nil, err
	}
	return g.Term, nil
}
