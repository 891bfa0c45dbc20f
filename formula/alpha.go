package formula

import (
	"fmt"
	"sort"
	"strings"
)

// structuralArgKey renders a term ignoring variable identity, keeping only
// its domain, so that two literals differing only by which variable name was
// chosen sort identically.
func structuralArgKey(t Term) string {
	switch v := t.(type) {
	case Constant:
		return "C:" + v.Symbol
	case Variable:
		return "V:" + string(v.Domain)
	case Function:
		parts := make([]string, len(v.Args))
		for i, a := range v.Args {
			parts[i] = structuralArgKey(a)
		}
		return "F:" + v.Symbol + "(" + strings.Join(parts, ",") + ")"
	default:
		panic(fmt.Sprintf("formula: unknown term variant %T", t))
	}
}

func structuralLiteralKey(l Literal) string {
	args := make([]string, len(l.Atom.Args))
	for i, a := range l.Atom.Args {
		args[i] = structuralArgKey(a)
	}
	pol := "+"
	if l.Negated {
		pol = "-"
	}
	return fmt.Sprintf("%s%s/%d(%s)", pol, l.Atom.Predicate, len(l.Atom.Args), strings.Join(args, ","))
}

// CanonicalKey computes a deterministic string identifying a clause up to
// alpha-renaming of variables: literals are ordered by a variable-blind
// structural key, then variables are renumbered in first-seen order over
// that ordering.
func CanonicalKey(c Clause) string {
	lits := c.Literals.Slice()
	sort.SliceStable(lits, func(i, j int) bool {
		return structuralLiteralKey(lits[i]) < structuralLiteralKey(lits[j])
	})

	names := make(map[string]string)
	counter := 0
	rename := func(t Term) string {
		v, ok := t.(Variable)
		if !ok {
			return t.String()
		}
		if n, ok := names[v.Name]; ok {
			return n
		}
		counter++
		n := fmt.Sprintf("?%d:%s", counter, v.Domain)
		names[v.Name] = n
		return n
	}

	parts := make([]string, len(lits))
	for i, l := range lits {
		args := make([]string, len(l.Atom.Args))
		for j, a := range l.Atom.Args {
			args[j] = rename(a)
		}
		pol := "+"
		if l.Negated {
			pol = "-"
		}
		parts[i] = fmt.Sprintf("%s%s(%s)", pol, l.Atom.Predicate, strings.Join(args, ","))
	}
	return strings.Join(parts, "|")
}

// AlphaEquivalent reports whether two clauses are equal up to a consistent,
// domain-preserving renaming of variables.
func AlphaEquivalent(a, b Clause) bool {
	return CanonicalKey(a) == CanonicalKey(b)
}

// LiteralSetKey computes an exact (non-alpha) structural key for a literal
// set, used by the definite-clause builder's literal-set equality
// deduplication (which is deliberately not alpha-invariant, per spec: paths
// already produce deterministic variable names, so identical body/head
// shapes must use identical variable names too).
func LiteralSetKey(lits []Literal) string {
	strs := make([]string, len(lits))
	for i, l := range lits {
		strs[i] = l.String()
	}
	sort.Strings(strs)
	return strings.Join(strs, "|")
}
