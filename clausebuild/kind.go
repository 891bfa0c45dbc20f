// Package clausebuild assembles Horn, conjunction, and definite clauses from
// variabilized paths, de-duplicating against pre-existing sets.
package clausebuild

// ClauseKind selects which shape(s) the Horn/conjunction builder emits per
// path.
type ClauseKind uint8

const (
	// Horn emits body ∪ {¬head}.
	Horn ClauseKind = 1 << iota
	// Conjunction emits body ∪ {+head}.
	Conjunction
	// Both emits both shapes, conjunction first.
	Both = Horn | Conjunction
)

func (k ClauseKind) hasHorn() bool        { return k&Horn != 0 }
func (k ClauseKind) hasConjunction() bool { return k&Conjunction != 0 }
