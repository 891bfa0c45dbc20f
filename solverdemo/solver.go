package solverdemo

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// Solver is the incremental CNF oracle MARCO drives: Solve reports
// satisfiability of everything asserted so far, Model returns the current
// satisfying assignment as the set of true rule identifiers, and AddClause
// asserts a new clause over signed rule identifiers.
type Solver interface {
	Solve() bool
	Model() IntSet
	AddClause(IntSet)
}

// GiniSolver drives gini incrementally. Rule identifiers are arbitrary
// non-zero ints (the caller's numbering); GiniSolver remaps them to gini's
// required dense 1..N variable range internally.
type GiniSolver struct {
	solver      *gini.Gini
	vars        IntSet
	ruleIDToLit map[int]int
	litToRuleID map[int]int
}

// NewGiniSolver builds a solver whose universe of rule identifiers is vars.
func NewGiniSolver(vars IntSet) *GiniSolver {
	ruleIDToLit := make(map[int]int)
	litToRuleID := make(map[int]int)
	for i, v := range vars.ToSlice() {
		ruleIDToLit[v] = i + 1
		litToRuleID[i+1] = v
	}
	return &GiniSolver{
		solver:      gini.NewV(len(ruleIDToLit)),
		vars:        vars,
		ruleIDToLit: ruleIDToLit,
		litToRuleID: litToRuleID,
	}
}

// Solve reports whether the asserted clauses are jointly satisfiable.
func (s *GiniSolver) Solve() bool { return s.solver.Solve() == 1 }

// Model returns the rule identifiers assigned true in the last model.
func (s *GiniSolver) Model() IntSet {
	result := NewIntSet()
	for lit, ruleID := range s.litToRuleID {
		if !s.solver.Value(z.Var(lit).Neg()) {
			result.Add(ruleID)
		}
	}
	return result
}

// AddClause asserts a disjunction of signed rule identifiers.
func (s *GiniSolver) AddClause(vs IntSet) {
	for v := range vs.Iter() {
		switch {
		case v < 0:
			s.solver.Add(z.Var(s.ruleIDToLit[-v]).Neg())
		case v > 0:
			s.solver.Add(z.Var(s.ruleIDToLit[v]).Pos())
		default:
			panic("solverdemo: rule identifier cannot be zero")
		}
	}
	s.solver.Add(0)
}
