// Package funcintro declares the function-introduction formatter contract:
// an external collaborator that replaces auxiliary predicates in a definite
// clause set with functional terms. The clause constructor treats it as a
// black box, calling it exactly once at the end of definite-clause
// construction.
package funcintro

import "mlnforge/formula"

// Formatter post-processes a freshly built definite clause set.
type Formatter interface {
	IntroduceFunctions(*formula.WeightedDefiniteClauseSet) *formula.WeightedDefiniteClauseSet
}

// Identity is a no-op Formatter, used when the caller supplies none.
type Identity struct{}

// IntroduceFunctions returns its input unchanged.
func (Identity) IntroduceFunctions(s *formula.WeightedDefiniteClauseSet) *formula.WeightedDefiniteClauseSet {
	return s
}
