package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"mlnforge/formula"
)

// mapEvidenceDB is an in-memory formula.EvidenceDB backed by a plain map,
// used to satisfy the path variabilizer's evidence lookups from a JSON file
// on the CLI side rather than a live evidence store.
type mapEvidenceDB map[int][]string

func (db mapEvidenceDB) Decode(atomID int) ([]string, error) {
	args, ok := db[atomID]
	if !ok {
		return nil, fmt.Errorf("atom %d not found in evidence file", atomID)
	}
	return args, nil
}

// evidenceDoc is the JSON shape: predicate/arity signature strings mapping to
// atom id -> constant arguments.
type evidenceDoc map[string]map[string][]string

// loadEvidence reads a JSON evidence file into a formula.Evidence table.
func loadEvidence(path string) (formula.Evidence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading evidence file %s: %w", path, err)
	}
	var doc evidenceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding evidence file %s: %w", path, err)
	}

	evidence := make(formula.Evidence, len(doc))
	for sigStr, atoms := range doc {
		sig, err := parseSignature(sigStr)
		if err != nil {
			return nil, err
		}
		db := make(mapEvidenceDB, len(atoms))
		for idStr, args := range atoms {
			id, err := strconv.Atoi(idStr)
			if err != nil {
				return nil, fmt.Errorf("evidence file %s: bad atom id %q under %s: %w", path, idStr, sigStr, err)
			}
			db[id] = args
		}
		evidence[sig] = db
	}
	return evidence, nil
}

func parseSignature(s string) (formula.Signature, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return formula.Signature{}, fmt.Errorf("bad signature %q, want predicate/arity", s)
	}
	arity, err := strconv.Atoi(parts[1])
	if err != nil {
		return formula.Signature{}, fmt.Errorf("bad arity in signature %q: %w", s, err)
	}
	return formula.Signature{Predicate: parts[0], Arity: arity}, nil
}

// pathDoc is the JSON shape of an HPath.
type pathDoc []pathElementDoc

type pathElementDoc struct {
	AtomID    int    `json:"atom_id"`
	Signature string `json:"signature"`
}

func loadPath(path string) (formula.HPath, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading path file %s: %w", path, err)
	}
	var doc pathDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding path file %s: %w", path, err)
	}
	out := make(formula.HPath, len(doc))
	for i, e := range doc {
		sig, err := parseSignature(e.Signature)
		if err != nil {
			return nil, err
		}
		out[i] = formula.PathElement{AtomID: e.AtomID, Signature: sig}
	}
	return out, nil
}
