package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mlnforge/config"
)

func newSchemaCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "schema",
		Short: "Inspect schema and domain configuration files",
	}
	c.AddCommand(newSchemaValidateCmd())
	return c
}

func newSchemaValidateCmd() *cobra.Command {
	var schemaPath, domainPath string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Load a schema and domain file and report predicate/domain coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, modes, err := config.LoadSchema(schemaPath)
			if err != nil {
				return err
			}
			constants, err := config.LoadDomain(domainPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d predicates declared\n", len(schema))
			for sig, domains := range schema {
				fmt.Fprintf(out, "  %s: domains=%v modes=%d\n", sig, domains, len(modes[sig]))
				for _, d := range domains {
					if _, ok := constants[d]; !ok {
						fmt.Fprintf(out, "    warning: domain %q has no constants declared\n", d)
					}
				}
			}
			fmt.Fprintf(out, "%d domains declared\n", len(constants))
			return nil
		},
	}
	c.Flags().StringVar(&schemaPath, "schema", "", "predicate schema YAML file (required)")
	c.Flags().StringVar(&domainPath, "domain", "", "domain constants YAML file (required)")
	c.MarkFlagRequired("schema")
	c.MarkFlagRequired("domain")
	return c
}
