// Package pathwalk implements the path variabilizer: it walks an HPath's
// ordered ground atoms and maps constants to fresh or reused variables under
// a mode-declaration policy, in the orientation required by the caller.
package pathwalk

import (
	"fmt"

	"mlnforge/formula"
	"mlnforge/mlnerr"
)

// state is the per-path scratch: a per-domain counter and a constant-to-
// variable map. Both reset between paths by constructing a fresh state.
type state struct {
	counters map[formula.Domain]int
	varOf    map[string]formula.Variable
}

func newState() *state {
	return &state{counters: make(map[formula.Domain]int), varOf: make(map[string]formula.Variable)}
}

// variableFor returns the variable standing for a constant within this
// path, allocating a fresh one on first sight and reusing it thereafter.
func (s *state) variableFor(domain formula.Domain, constant string) formula.Variable {
	if v, ok := s.varOf[constant]; ok {
		return v
	}
	s.counters[domain]++
	name := fmt.Sprintf("v%c%d", firstLetter(domain), s.counters[domain])
	v := formula.Variable{Name: name, Domain: domain}
	s.varOf[constant] = v
	return v
}

func firstLetter(d formula.Domain) rune {
	for _, r := range string(d) {
		return r
	}
	return '_'
}

// variabilizeAtom decodes one path element into a variabilized atom.
// suppressConstant disables the placemarker constant check (used for the
// head position of the definite-clause walk).
func variabilizeAtom(
	elem formula.PathElement,
	schema formula.PredicateSchema,
	modes formula.ModeDeclarations,
	evidence formula.Evidence,
	st *state,
	suppressConstant bool,
) (formula.AtomicFormula, error) {
	domains, ok := schema[elem.Signature]
	if !ok {
		return formula.AtomicFormula{}, &mlnerr.MissingSchemaError{Signature: elem.Signature}
	}

	db, ok := evidence[elem.Signature]
	if !ok {
		return formula.AtomicFormula{}, &mlnerr.EvidenceDecodeError{
			Signature: elem.Signature,
			AtomID:    elem.AtomID,
			Cause:     fmt.Errorf("no evidence database registered for %s", elem.Signature),
		}
	}
	constants, err := db.Decode(elem.AtomID)
	if err != nil {
		return formula.AtomicFormula{}, &mlnerr.EvidenceDecodeError{
			Signature: elem.Signature,
			AtomID:    elem.AtomID,
			Cause:     err,
		}
	}

	placemarkers := modes[elem.Signature]
	args := make([]formula.Term, len(constants))
	for i, c := range constants {
		var domain formula.Domain
		if i < len(domains) {
			domain = domains[i]
		}
		isConstant := false
		if !suppressConstant && i < len(placemarkers) {
			isConstant = placemarkers[i].IsConstant()
		}
		if isConstant {
			args[i] = formula.Constant{Symbol: c}
			continue
		}
		args[i] = st.variableFor(domain, c)
	}
	return formula.AtomicFormula{Predicate: elem.Signature.Predicate, Args: args}, nil
}

// WalkClausal variabilizes a path for Horn/CNF construction: the last
// element is the head, every earlier element is a body atom, and the
// constant placemarker applies uniformly, including to the head.
func WalkClausal(
	path formula.HPath,
	schema formula.PredicateSchema,
	modes formula.ModeDeclarations,
	evidence formula.Evidence,
) (body []formula.AtomicFormula, head formula.AtomicFormula, err error) {
	st := newState()
	atoms := make([]formula.AtomicFormula, len(path))
	for i, elem := range path {
		atoms[i], err = variabilizeAtom(elem, schema, modes, evidence, st, false)
		if err != nil {
			return nil, formula.AtomicFormula{}, err
		}
	}
	return atoms[:len(atoms)-1], atoms[len(atoms)-1], nil
}

// WalkDefinite variabilizes a path in reverse for definite-clause
// construction: the final element of the reversed walk (the path's original
// first element) is the head, with the constant placemarker suppressed for
// it; the remaining elements, still in reversed order, form the body.
func WalkDefinite(
	path formula.HPath,
	schema formula.PredicateSchema,
	modes formula.ModeDeclarations,
	evidence formula.Evidence,
) (body []formula.AtomicFormula, head formula.AtomicFormula, err error) {
	reversed := path.Reversed()
	st := newState()
	atoms := make([]formula.AtomicFormula, len(reversed))
	for i, elem := range reversed {
		suppress := i == len(reversed)-1
		atoms[i], err = variabilizeAtom(elem, schema, modes, evidence, st, suppress)
		if err != nil {
			return nil, formula.AtomicFormula{}, err
		}
	}
	return atoms[:len(atoms)-1], atoms[len(atoms)-1], nil
}
