package solverdemo

import mapset "github.com/deckarep/golang-set/v2"

// marco enumerates minimal unsatisfiable subsets (MUS) and maximal
// satisfiable subsets (MSS) of a rule universe, given a black-box
// satisfiability oracle. It is the classic "grow/shrink" MUS/MSS enumeration
// loop: a seeding solver proposes candidate subsets, each is grown to an MSS
// or shrunk to a MUS depending on satisfiability, and a blocking clause
// forbids revisiting the same conclusion.
type marco struct {
	rules       IntSet
	MUSs        []IntSet
	MSSs        []IntSet
	maxLoop     int
	loopCounter int
	sat         func([]int) bool
	seedSolver  Solver
}

func newMarco(rules []int, sat func([]int) bool) *marco {
	return &marco{
		rules:      mapset.NewSet[int](rules...),
		maxLoop:    1000,
		sat:        sat,
		seedSolver: NewMaxsatSolver(NewIntSet(rules...)),
	}
}

func (m *marco) grow(seed IntSet) IntSet {
	for elem := range m.rules.Difference(seed).Iter() {
		candidate := seed.Clone()
		candidate.Add(elem)
		if m.satisfiable(candidate) {
			seed.Add(elem)
		}
	}
	return seed
}

func (m *marco) shrink(seed IntSet) IntSet {
	for elem := range seed.Clone().Iter() {
		reduced := seed.Difference(NewIntSet(elem))
		if !m.satisfiable(reduced) {
			seed.Remove(elem)
		}
	}
	return seed
}

func (m *marco) satisfiable(rules IntSet) bool { return m.sat(rules.ToSlice()) }

// run drives the enumeration to exhaustion: every model the seed solver
// proposes is grown into an MSS or shrunk into a MUS, and a blocking clause
// rules the conclusion out of future models.
func (m *marco) run() {
	for m.seedSolver.Solve() {
		if m.loopCounter >= m.maxLoop {
			panic("solverdemo: MUS/MSS enumeration exceeded its loop budget")
		}
		m.loopCounter++

		seed := m.seedSolver.Model()
		if m.satisfiable(seed) {
			mss := m.grow(seed)
			m.MSSs = append(m.MSSs, mss)
			m.seedSolver.AddClause(m.rules.Difference(mss))
			continue
		}

		mus := m.shrink(seed)
		m.MUSs = append(m.MUSs, mus)
		negated := NewIntSet()
		for v := range mus.Iter() {
			negated.Add(-v)
		}
		m.seedSolver.AddClause(negated)
	}
}

// component groups one connected cluster of conflicting rules: its MUSes,
// the MSSes complementary to them, and the union of rules implicated.
type component struct {
	MUSs     []IntSet
	MSSs     []IntSet
	Critical IntSet
}

func combinations(input []int) [][2]int {
	var out [][2]int
	for i := 0; i < len(input); i++ {
		for j := i + 1; j < len(input); j++ {
			out = append(out, [2]int{input[i], input[j]})
		}
	}
	return out
}

// analyze groups the run's MUSes into connected components (two MUSes are
// linked if they share a rule), and for each component restricts every MCS
// to that component's critical set (dropping empty and repeated results) and
// takes each MSS as the critical set minus one such restricted MCS.
func (m *marco) analyze() []component {
	mcss := make([]IntSet, len(m.MSSs))
	for i, mss := range m.MSSs {
		mcss[i] = m.rules.Difference(mss)
	}

	indices := make([]int, len(m.MUSs))
	for i := range indices {
		indices[i] = i
	}
	g := newConflictGraph(len(indices))
	for _, pair := range combinations(indices) {
		if !m.MUSs[pair[0]].Intersect(m.MUSs[pair[1]]).IsEmpty() {
			g.addEdge(pair[0], pair[1])
		}
	}

	var components []component
	for _, musIndices := range g.connectedComponents() {
		var musList []IntSet
		for _, idx := range musIndices {
			musList = append(musList, m.MUSs[idx])
		}

		critical := NewIntSet()
		for _, mus := range musList {
			critical = critical.Union(mus)
		}

		var mcsList []IntSet
		for _, mcs := range mcss {
			reduced := mcs.Intersect(critical)
			if reduced.IsEmpty() {
				continue
			}
			seen := false
			for _, existing := range mcsList {
				if reduced.Equal(existing) {
					seen = true
					break
				}
			}
			if !seen {
				mcsList = append(mcsList, reduced)
			}
		}

		var mssList []IntSet
		for _, mcs := range mcsList {
			mssList = append(mssList, critical.Difference(mcs))
		}

		components = append(components, component{MUSs: musList, MSSs: mssList, Critical: critical})
	}
	return components
}
