package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mlnforge/clausebuild"
	"mlnforge/config"
	"mlnforge/formula"
	"mlnforge/funcintro"
	"mlnforge/prologfmt"
)

func newClausesCmd() *cobra.Command {
	var (
		schemaPath   string
		evidencePath string
		kindFlag     string
		formatFlag   string
		definite     bool
		distinctHead bool
	)

	c := &cobra.Command{
		Use:   "clauses PATH.json...",
		Short: "Variabilize hyperpaths into Horn, conjunction, or definite clauses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, modes, err := config.LoadSchema(schemaPath)
			if err != nil {
				return err
			}
			evidence, err := loadEvidence(evidencePath)
			if err != nil {
				return err
			}

			paths := make([]formula.HPath, len(args))
			for i, p := range args {
				path, err := loadPath(p)
				if err != nil {
					return err
				}
				paths[i] = path
			}

			asProlog, err := parseClauseFormat(formatFlag)
			if err != nil {
				return err
			}

			if definite {
				out, err := clausebuild.DefiniteClauses(
					paths, schema, modes, evidence,
					formula.NewWeightedDefiniteClauseSet(),
					clausebuild.DefiniteOptions{RequireDistinctHeadTerms: distinctHead},
					funcintro.Identity{},
				)
				if err != nil {
					return err
				}
				for _, wdc := range out.Slice() {
					if asProlog {
						fmt.Fprintln(cmd.OutOrStdout(), prologfmt.RenderDefiniteClause(wdc.Clause))
					} else {
						fmt.Fprintln(cmd.OutOrStdout(), wdc.Clause.String())
					}
				}
				return nil
			}

			kind, err := parseClauseKind(kindFlag)
			if err != nil {
				return err
			}
			out, err := clausebuild.Clauses(paths, schema, modes, evidence, kind, nil)
			if err != nil {
				return err
			}
			for _, c := range out {
				if asProlog {
					fmt.Fprintln(cmd.OutOrStdout(), prologfmt.RenderClause(c))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), c.String())
				}
			}
			return nil
		},
	}

	c.Flags().StringVar(&schemaPath, "schema", "", "predicate schema YAML file (required)")
	c.Flags().StringVar(&evidencePath, "evidence", "", "evidence JSON file (required)")
	c.Flags().StringVar(&kindFlag, "kind", "both", "clause shape: horn, conjunction, or both")
	c.Flags().StringVar(&formatFlag, "format", "text", "output format: text or prolog")
	c.Flags().BoolVar(&definite, "definite", false, "build definite clauses instead of Horn/conjunction clauses")
	c.Flags().BoolVar(&distinctHead, "require-distinct-head-terms", false, "reject definite clauses whose head repeats a variable")
	c.MarkFlagRequired("schema")
	c.MarkFlagRequired("evidence")
	return c
}

func parseClauseFormat(s string) (bool, error) {
	switch s {
	case "text":
		return false, nil
	case "prolog":
		return true, nil
	default:
		return false, fmt.Errorf("unknown output format %q, want text or prolog", s)
	}
}

func parseClauseKind(s string) (clausebuild.ClauseKind, error) {
	switch s {
	case "horn":
		return clausebuild.Horn, nil
	case "conjunction":
		return clausebuild.Conjunction, nil
	case "both":
		return clausebuild.Both, nil
	default:
		return 0, fmt.Errorf("unknown clause kind %q, want horn, conjunction, or both", s)
	}
}
