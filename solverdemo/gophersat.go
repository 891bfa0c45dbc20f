package solverdemo

import "github.com/crillab/gophersat/solver"

// GopherSolver is an alternative incremental Solver backed by gophersat, an
// independent SAT backend for cross-checking gini's answer on a diagnosis.
// Diagnose itself uses GiniSolver.
type GopherSolver struct {
	solver      *solver.Solver
	ruleIDToLit map[int]int
	litToRuleID map[int]int
}

// NewGopherSolver builds a solver whose universe of rule identifiers is vars.
func NewGopherSolver(vars IntSet) *GopherSolver {
	ruleIDToLit := make(map[int]int)
	litToRuleID := make(map[int]int)
	for i, v := range vars.ToSlice() {
		ruleIDToLit[v] = i + 1
		litToRuleID[i+1] = v
	}

	clauses := make([][]int, 0, len(litToRuleID))
	for lit := range litToRuleID {
		clauses = append(clauses, []int{lit, -lit})
	}
	pb := solver.ParseSlice(clauses)
	return &GopherSolver{
		solver:      solver.New(pb),
		ruleIDToLit: ruleIDToLit,
		litToRuleID: litToRuleID,
	}
}

// Solve reports whether the asserted clauses are jointly satisfiable.
func (s *GopherSolver) Solve() bool { return s.solver.Solve() == solver.Sat }

// Model returns the rule identifiers assigned true in the last model.
func (s *GopherSolver) Model() IntSet {
	model := NewIntSet()
	for i, negated := range s.solver.Model() {
		if !negated {
			model.Add(s.litToRuleID[i+1])
		}
	}
	return model
}

// AddClause asserts a disjunction of signed rule identifiers.
func (s *GopherSolver) AddClause(vs IntSet) {
	lits := make([]solver.Lit, 0, vs.Cardinality())
	for v := range vs.Iter() {
		if v > 0 {
			lits = append(lits, solver.IntToLit(int32(s.ruleIDToLit[v])).Negation())
		} else {
			lits = append(lits, solver.IntToLit(int32(s.ruleIDToLit[-v])))
		}
	}
	s.solver.AppendClause(solver.NewClause(lits))
}
