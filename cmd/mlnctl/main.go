// Command mlnctl drives the clause constructor from the shell: compiling
// weighted formulas to CNF, walking hyperpaths into Horn/definite clauses,
// and replaying fixtures out of a corpus database.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mlnforge/cnf"
)

func main() {
	var verbose bool
	root := &cobra.Command{
		Use:   "mlnctl",
		Short: "Clause constructor CLI: CNF compilation, path variabilization, fixture replay",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				cnf.Logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging for the CNF pipeline")
	root.AddCommand(newCNFCmd())
	root.AddCommand(newClausesCmd())
	root.AddCommand(newReplayCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
