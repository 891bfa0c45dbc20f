// Package solverdemo diagnoses a compiled hard-clause set for joint
// unsatisfiability: given the clauses a MakeCNF run marked hard, it finds
// every minimal unsatisfiable subset (MUS) and its complementary maximal
// satisfiable subset (MSS), grouping conflicts that share no clause into
// independent components so a caller can address them one at a time.
package solverdemo

import mapset "github.com/deckarep/golang-set/v2"

// IntSet is a set of rule (hard-clause) identifiers, mirroring the source
// tool's own IntSet-over-mapset idiom used elsewhere in this repository.
type IntSet mapset.Set[int]

// NewIntSet builds an IntSet from the given values.
func NewIntSet(vals ...int) IntSet { return IntSet(mapset.NewSet[int](vals...)) }
