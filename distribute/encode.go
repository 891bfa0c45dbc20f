// Package distribute implements the hybrid distributor: integer encoding of
// NNF formulas, the fast-distribute predicate, the integer-encoded fast
// distributor, and the generic exponential fallback distributor.
package distribute

import (
	"fmt"

	"mlnforge/formula"
	"mlnforge/mlnerr"
)

// Reserved integer codes for the two connectives; every atom (or negated
// atom) is assigned a fresh integer starting at firstAtomKey.
const (
	codeOr  = 0
	codeAnd = 1

	firstAtomKey = 2
)

// Encoder holds the call-scoped, mutually inverse maps between literals and
// their integer keys. An Encoder is used for exactly one distribution call
// and is never shared across formulas.
type Encoder struct {
	nextKey   int
	keyOf     map[string]int
	litOf     map[int]formula.Literal
}

// NewEncoder returns an empty encoder ready to encode one NNF formula.
func NewEncoder() *Encoder {
	return &Encoder{
		nextKey: firstAtomKey,
		keyOf:   make(map[string]int),
		litOf:   make(map[int]formula.Literal),
	}
}

// NewDecoderFromLiterals builds an Encoder pre-loaded with a caller-supplied
// key-to-literal table, for decoding a previously recorded code sequence
// whose original Encoder is unavailable (e.g. a fixture replayed from disk).
// It must not be used to Encode new formulas.
func NewDecoderFromLiterals(litOf map[int]formula.Literal) *Encoder {
	keyOf := make(map[string]int, len(litOf))
	nextKey := firstAtomKey
	for k, l := range litOf {
		keyOf[literalKey(l)] = k
		if k >= nextKey {
			nextKey = k + 1
		}
	}
	return &Encoder{nextKey: nextKey, keyOf: keyOf, litOf: litOf}
}

func literalKey(l formula.Literal) string {
	return fmt.Sprintf("%v|%s", l.Negated, l.Atom.String())
}

func (e *Encoder) keyFor(l formula.Literal) int {
	k := literalKey(l)
	if id, ok := e.keyOf[k]; ok {
		return id
	}
	id := e.nextKey
	e.nextKey++
	e.keyOf[k] = id
	e.litOf[id] = l
	return id
}

// Literal returns the literal a previously assigned key stands for.
func (e *Encoder) Literal(key int) (formula.Literal, bool) {
	l, ok := e.litOf[key]
	return l, ok
}

// Encode serializes an NNF formula (Atomic, Not-of-Atomic, And, Or only)
// into prefix integer form: operator code, then left subtree, then right
// subtree. It fails with EncodingError on any other construct, signalling
// that normalization did not run to completion.
func (e *Encoder) Encode(f formula.FormulaConstruct) ([]int, error) {
	switch v := f.(type) {
	case formula.Atomic:
		return []int{e.keyFor(formula.Positive(v.Atom))}, nil
	case formula.Not:
		atomic, ok := v.Operand.(formula.Atomic)
		if !ok {
			return nil, &mlnerr.EncodingError{Construct: stringer(f)}
		}
		return []int{e.keyFor(formula.Negative(atomic.Atom))}, nil
	case formula.And:
		left, err := e.Encode(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.Encode(v.Right)
		if err != nil {
			return nil, err
		}
		return concatCodes(codeAnd, left, right), nil
	case formula.Or:
		left, err := e.Encode(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.Encode(v.Right)
		if err != nil {
			return nil, err
		}
		return concatCodes(codeOr, left, right), nil
	default:
		return nil, &mlnerr.EncodingError{Construct: stringer(f)}
	}
}

func concatCodes(op int, left, right []int) []int {
	out := make([]int, 0, 1+len(left)+len(right))
	out = append(out, op)
	out = append(out, left...)
	out = append(out, right...)
	return out
}

// Decode reconstructs the formula a code sequence encodes by a right-to-left
// stack pass: atom keys push a literal-formula, operator codes pop two
// operands (first pop is the left child, second the right, matching prefix
// order) and push the connective.
func (e *Encoder) Decode(codes []int) formula.FormulaConstruct {
	var stack []formula.FormulaConstruct
	for i := len(codes) - 1; i >= 0; i-- {
		switch c := codes[i]; c {
		case codeOr:
			left, right := pop2(&stack)
			stack = append(stack, formula.Or{Left: left, Right: right})
		case codeAnd:
			left, right := pop2(&stack)
			stack = append(stack, formula.And{Left: left, Right: right})
		default:
			lit := e.litOf[c]
			stack = append(stack, literalFormula(lit))
		}
	}
	if len(stack) != 1 {
		panic("distribute: malformed code sequence did not reduce to one formula")
	}
	return stack[0]
}

func pop2(stack *[]formula.FormulaConstruct) (left, right formula.FormulaConstruct) {
	s := *stack
	left = s[len(s)-1]
	right = s[len(s)-2]
	*stack = s[:len(s)-2]
	return left, right
}

func literalFormula(l formula.Literal) formula.FormulaConstruct {
	if l.Negated {
		return formula.Not{Operand: formula.Atomic{Atom: l.Atom}}
	}
	return formula.Atomic{Atom: l.Atom}
}

type stringerFn func() string

func (s stringerFn) String() string { return s() }

func stringer(f formula.FormulaConstruct) fmt.Stringer {
	return stringerFn(func() string { return f.String() })
}
