package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mlnforge/cnf"
	"mlnforge/config"
	"mlnforge/formula"
	"mlnforge/formulaio"
)

func newCNFCmd() *cobra.Command {
	var domainPath string

	c := &cobra.Command{
		Use:   "cnf FORMULA.json...",
		Short: "Compile one or more weighted formulas to a deduplicated clause set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var constants formula.ConstantsSet
			if domainPath != "" {
				dom, err := config.LoadDomain(domainPath)
				if err != nil {
					return err
				}
				constants = dom
			}

			inputs := make([]cnf.Input, len(args))
			for i, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				wf, err := formulaio.DecodeWeightedFormula(data)
				if err != nil {
					return fmt.Errorf("decoding %s: %w", path, err)
				}
				inputs[i] = cnf.FromWeighted(wf.Weight, wf.Formula)
			}

			result, err := cnf.MakeCNF(context.Background(), inputs, constants)
			if err != nil {
				return err
			}
			for _, clause := range result.Slice() {
				fmt.Fprintln(cmd.OutOrStdout(), clause.String())
			}
			return nil
		},
	}
	c.Flags().StringVar(&domainPath, "domain", "", "domain constants YAML file, needed if any formula uses a quantifier")
	return c
}
