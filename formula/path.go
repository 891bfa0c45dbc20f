package formula

// PathElement is one step of an HPath: a ground atom identified by id and
// the predicate signature it instantiates.
type PathElement struct {
	AtomID    int
	Signature Signature
}

// HPath is an ordered, non-empty sequence of ground atoms discovered by the
// hypergraph path search. Orientation (which end is the head) depends on the
// consumer; see the path variabilizer.
type HPath []PathElement

// Reversed returns a new path with elements in reverse order, used by the
// definite-clause builder's head-first traversal.
func (p HPath) Reversed() HPath {
	out := make(HPath, len(p))
	for i, e := range p {
		out[len(p)-1-i] = e
	}
	return out
}
