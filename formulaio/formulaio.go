// Package formulaio decodes the JSON wire representation of a weighted
// formula or definite clause accepted by the mlnctl CLI into the formula
// package's tagged-sum types.
package formulaio

import (
	"encoding/json"
	"fmt"

	"mlnforge/formula"
)

// TermDoc is the JSON shape of a term: a Kind discriminator plus the fields
// relevant to that kind.
type TermDoc struct {
	Kind   string    `json:"kind"`
	Symbol string    `json:"symbol,omitempty"`
	Name   string    `json:"name,omitempty"`
	Domain string    `json:"domain,omitempty"`
	Args   []TermDoc `json:"args,omitempty"`
}

// FormulaDoc is the JSON shape of a formula construct: a Kind discriminator
// plus the fields relevant to that kind.
type FormulaDoc struct {
	Kind      string      `json:"kind"`
	Predicate string      `json:"predicate,omitempty"`
	Args      []TermDoc   `json:"args,omitempty"`
	Operand   *FormulaDoc `json:"operand,omitempty"`
	Left      *FormulaDoc `json:"left,omitempty"`
	Right     *FormulaDoc `json:"right,omitempty"`
	Var       *TermDoc    `json:"var,omitempty"`
	Body      *FormulaDoc `json:"body,omitempty"`
}

// WeightedFormulaDoc pairs a formula document with its weight.
type WeightedFormulaDoc struct {
	Formula FormulaDoc `json:"formula"`
	Weight  float64    `json:"weight"`
	Hard    bool       `json:"hard"`
}

// DecodeTerm converts a term document into a formula.Term.
func DecodeTerm(d TermDoc) (formula.Term, error) {
	switch d.Kind {
	case "constant":
		return formula.Constant{Symbol: d.Symbol}, nil
	case "variable":
		return formula.Variable{Name: d.Name, Domain: formula.Domain(d.Domain)}, nil
	case "function":
		args := make([]formula.Term, len(d.Args))
		for i, a := range d.Args {
			t, err := DecodeTerm(a)
			if err != nil {
				return nil, err
			}
			args[i] = t
		}
		return formula.Function{Symbol: d.Symbol, Args: args}, nil
	default:
		return nil, fmt.Errorf("formulaio: unknown term kind %q", d.Kind)
	}
}

// DecodeFormula converts a formula document into a formula.FormulaConstruct.
func DecodeFormula(d FormulaDoc) (formula.FormulaConstruct, error) {
	switch d.Kind {
	case "atomic":
		args := make([]formula.Term, len(d.Args))
		for i, a := range d.Args {
			t, err := DecodeTerm(a)
			if err != nil {
				return nil, err
			}
			args[i] = t
		}
		return formula.Atomic{Atom: formula.AtomicFormula{Predicate: d.Predicate, Args: args}}, nil
	case "not":
		operand, err := requireFormula(d.Operand, "not")
		if err != nil {
			return nil, err
		}
		sub, err := DecodeFormula(*operand)
		if err != nil {
			return nil, err
		}
		return formula.Not{Operand: sub}, nil
	case "and", "or", "implies", "iff":
		left, right, err := decodeBinary(d)
		if err != nil {
			return nil, err
		}
		switch d.Kind {
		case "and":
			return formula.And{Left: left, Right: right}, nil
		case "or":
			return formula.Or{Left: left, Right: right}, nil
		case "implies":
			return formula.Implies{Left: left, Right: right}, nil
		default:
			return formula.Iff{Left: left, Right: right}, nil
		}
	case "exists", "forall":
		if d.Var == nil {
			return nil, fmt.Errorf("formulaio: %s missing var", d.Kind)
		}
		vt, err := DecodeTerm(*d.Var)
		if err != nil {
			return nil, err
		}
		v, ok := vt.(formula.Variable)
		if !ok {
			return nil, fmt.Errorf("formulaio: %s var must be a variable term", d.Kind)
		}
		body, err := requireFormula(d.Body, d.Kind)
		if err != nil {
			return nil, err
		}
		sub, err := DecodeFormula(*body)
		if err != nil {
			return nil, err
		}
		if d.Kind == "exists" {
			return formula.Exists{Var: v, Body: sub}, nil
		}
		return formula.ForAll{Var: v, Body: sub}, nil
	default:
		return nil, fmt.Errorf("formulaio: unknown formula kind %q", d.Kind)
	}
}

func requireFormula(f *FormulaDoc, kind string) (*FormulaDoc, error) {
	if f == nil {
		return nil, fmt.Errorf("formulaio: %s missing operand", kind)
	}
	return f, nil
}

func decodeBinary(d FormulaDoc) (formula.FormulaConstruct, formula.FormulaConstruct, error) {
	if d.Left == nil || d.Right == nil {
		return nil, nil, fmt.Errorf("formulaio: %s missing left/right", d.Kind)
	}
	left, err := DecodeFormula(*d.Left)
	if err != nil {
		return nil, nil, err
	}
	right, err := DecodeFormula(*d.Right)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// DecodeWeightedFormula parses a JSON document into a formula.WeightedFormula.
func DecodeWeightedFormula(data []byte) (formula.WeightedFormula, error) {
	var doc WeightedFormulaDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return formula.WeightedFormula{}, fmt.Errorf("formulaio: decoding JSON: %w", err)
	}
	f, err := DecodeFormula(doc.Formula)
	if err != nil {
		return formula.WeightedFormula{}, err
	}
	weight := formula.SoftWeight(doc.Weight)
	if doc.Hard {
		weight = formula.HardWeight()
	}
	return formula.WeightedFormula{Weight: weight, Formula: f}, nil
}
