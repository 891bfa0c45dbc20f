package solverdemo

import (
	"strconv"

	"github.com/crillab/gophersat/maxsat"
)

// MaxSatSolver seeds MARCO's search: every rule identifier starts as a soft
// clause (satisfied when possible, dropped otherwise), and each AddClause
// call from MARCO tightens the problem with a hard blocking clause.
type MaxSatSolver struct {
	clauses []maxsat.Constr
	vars    IntSet
	model   map[string]bool
}

// NewMaxsatSolver builds a solver whose universe of rule identifiers is vars.
func NewMaxsatSolver(vars IntSet) *MaxSatSolver {
	soft := make([]maxsat.Constr, 0, vars.Cardinality())
	for v := range vars.Iter() {
		soft = append(soft, maxsat.SoftClause(maxsat.Var(strconv.Itoa(v))))
	}
	return &MaxSatSolver{clauses: soft, vars: vars, model: make(map[string]bool)}
}

// Solve finds an assignment satisfying as many soft clauses (rule
// identifiers) as the accumulated hard clauses allow.
func (s *MaxSatSolver) Solve() bool {
	pb := maxsat.New(s.clauses...)
	model, _ := pb.Solve()
	s.model = model
	return model != nil
}

// Model returns the rule identifiers assigned true in the last solve.
func (s *MaxSatSolver) Model() IntSet {
	model := NewIntSet()
	for v := range s.vars.Iter() {
		if s.model[strconv.Itoa(v)] {
			model.Add(v)
		}
	}
	return model
}

// AddClause asserts a hard blocking clause over signed rule identifiers.
func (s *MaxSatSolver) AddClause(vars IntSet) {
	lits := make([]maxsat.Lit, 0, vars.Cardinality())
	for v := range vars.Iter() {
		if v > 0 {
			lits = append(lits, maxsat.Var(strconv.Itoa(v)))
		} else {
			lits = append(lits, maxsat.Var(strconv.Itoa(-v)).Negation())
		}
	}
	s.clauses = append(s.clauses, maxsat.HardClause(lits...))
}
