// Package config loads the schema, mode declarations, and domain constant
// pools that drive the path variabilizer and clause builder from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mlnforge/formula"
)

// ErrInvalidConfig is the sentinel wrapped by every parse failure in this
// package.
var ErrInvalidConfig = fmt.Errorf("invalid clause constructor configuration")

// SchemaDoc is the on-disk shape of a schema file: one entry per predicate,
// naming its argument domains and mode-declaration flags.
type SchemaDoc struct {
	Predicates []PredicateDoc `yaml:"predicates"`
}

// PredicateDoc describes one predicate's signature and per-argument policy.
type PredicateDoc struct {
	Name string   `yaml:"name"`
	Args []ArgDoc `yaml:"args"`
}

// ArgDoc is one argument position: its domain and mode flags.
type ArgDoc struct {
	Domain   string `yaml:"domain"`
	Constant bool   `yaml:"constant"`
	Input    bool   `yaml:"input"`
	Output   bool   `yaml:"output"`
}

// DomainDoc is the on-disk shape of a domain file: the finite constant pool
// per domain name.
type DomainDoc struct {
	Domains map[string][]string `yaml:"domains"`
}

// LoadSchema reads a predicate schema and its mode declarations from a YAML
// file.
func LoadSchema(path string) (formula.PredicateSchema, formula.ModeDeclarations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
	}

	var doc SchemaDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}

	schema := make(formula.PredicateSchema, len(doc.Predicates))
	modes := make(formula.ModeDeclarations, len(doc.Predicates))
	for _, pred := range doc.Predicates {
		sig := formula.Signature{Predicate: pred.Name, Arity: len(pred.Args)}
		domains := make([]formula.Domain, len(pred.Args))
		placemarkers := make([]formula.Placemarker, len(pred.Args))
		for i, arg := range pred.Args {
			domains[i] = formula.Domain(arg.Domain)
			var flags formula.PlacemarkerFlag
			if arg.Constant {
				flags |= formula.FlagConstant
			}
			if arg.Input {
				flags |= formula.FlagInput
			}
			if arg.Output {
				flags |= formula.FlagOutput
			}
			placemarkers[i] = formula.Placemarker{Flags: flags}
		}
		schema[sig] = domains
		modes[sig] = placemarkers
	}
	return schema, modes, nil
}

// LoadDomain reads a domain's constant pools from a YAML file.
func LoadDomain(path string) (formula.ConstantsSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
	}

	var doc DomainDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}

	constants := make(formula.ConstantsSet, len(doc.Domains))
	for name, symbols := range doc.Domains {
		constants[formula.Domain(name)] = symbols
	}
	return constants, nil
}
