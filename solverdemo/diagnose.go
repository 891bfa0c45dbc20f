package solverdemo

import "mlnforge/formula"

// literalEncoder maps clause literals to a shared propositional variable
// space so an arbitrary subset of hard clauses can be handed to a CNF
// oracle. Unlike distribute.Encoder it is keyed on the atom alone (polarity
// is carried as sign), matching what a SAT solver expects.
type literalEncoder struct {
	nextVar int
	varOf   map[string]int
}

func newLiteralEncoder() *literalEncoder {
	return &literalEncoder{nextVar: 1, varOf: make(map[string]int)}
}

func (e *literalEncoder) varFor(a formula.AtomicFormula) int {
	key := a.String()
	if v, ok := e.varOf[key]; ok {
		return v
	}
	v := e.nextVar
	e.nextVar++
	e.varOf[key] = v
	return v
}

func (e *literalEncoder) encodeClause(c formula.Clause) []int {
	lits := c.Literals.Slice()
	out := make([]int, len(lits))
	for i, l := range lits {
		v := e.varFor(l.Atom)
		if l.Negated {
			v = -v
		}
		out[i] = v
	}
	return out
}

// Diagnosis is one independent cluster of jointly-conflicting hard clauses:
// every minimal unsatisfiable subset found within it, the complementary
// maximal satisfiable subsets, and the union of clauses implicated.
type Diagnosis struct {
	MinimalUnsatisfiable [][]formula.Clause
	MaximalSatisfiable   [][]formula.Clause
	Critical             []formula.Clause
}

// Diagnose runs MUS/MSS enumeration over the hard clauses in cs. It returns
// one Diagnosis per connected cluster of conflicting clauses (clusters whose
// MUSes share no clause are reported independently), or nil if the hard clauses
// are jointly satisfiable.
func Diagnose(cs *formula.ClauseSet) ([]Diagnosis, error) {
	var hard []formula.Clause
	for _, c := range cs.Slice() {
		if c.Weight.Hard {
			hard = append(hard, c)
		}
	}
	if len(hard) == 0 {
		return nil, nil
	}

	enc := newLiteralEncoder()
	cnfClauses := make([][]int, len(hard))
	for i, c := range hard {
		cnfClauses[i] = enc.encodeClause(c)
	}

	ruleIDs := make([]int, len(hard))
	for i := range hard {
		ruleIDs[i] = i + 1
	}
	atomVars := NewIntSet(varsIn(cnfClauses)...)

	// satFunc checks joint satisfiability of a subset of hard clauses (named
	// by 1-based rule id) over the shared atom-variable space, using a fresh
	// solver instance per candidate subset.
	satFunc := func(rules []int) bool {
		solver := NewGiniSolver(atomVars)
		for _, ruleID := range rules {
			solver.AddClause(intClauseToRuleSet(cnfClauses[ruleID-1]))
		}
		return solver.Solve()
	}

	m := newMarco(ruleIDs, satFunc)
	m.run()

	if len(m.MUSs) == 0 {
		return nil, nil
	}

	components := m.analyze()
	diagnoses := make([]Diagnosis, len(components))
	for i, comp := range components {
		diagnoses[i] = Diagnosis{
			MinimalUnsatisfiable: toClauseGroups(comp.MUSs, hard),
			MaximalSatisfiable:   toClauseGroups(comp.MSSs, hard),
			Critical:             toClauses(comp.Critical, hard),
		}
	}
	return diagnoses, nil
}

func varsIn(clauses [][]int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, clause := range clauses {
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// intClauseToRuleSet reuses IntSet's signed-literal convention to carry a
// CNF clause's literals into a Solver.AddClause call.
func intClauseToRuleSet(clause []int) IntSet { return NewIntSet(clause...) }

func toClauses(ids IntSet, hard []formula.Clause) []formula.Clause {
	out := make([]formula.Clause, 0, ids.Cardinality())
	for _, id := range ids.ToSlice() {
		out = append(out, hard[id-1])
	}
	return out
}

func toClauseGroups(groups []IntSet, hard []formula.Clause) [][]formula.Clause {
	out := make([][]formula.Clause, len(groups))
	for i, g := range groups {
		out[i] = toClauses(g, hard)
	}
	return out
}
