package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mlnforge/corpus"
	"mlnforge/distribute"
	"mlnforge/extract"
	"mlnforge/formula"
)

func newReplayCmd() *cobra.Command {
	var corpusPath string

	c := &cobra.Command{
		Use:   "replay NAME",
		Short: "Re-run a formula fixture from the corpus database and print its clauses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, err := corpus.Open(ctx, corpusPath)
			if err != nil {
				return err
			}
			defer store.Close()

			fixture, err := store.LoadFormulaFixture(ctx, args[0])
			if err != nil {
				return err
			}

			litOf := make(map[int]formula.Literal, len(fixture.AtomLabels))
			for code, label := range fixture.AtomLabels {
				lit, err := parseLiteralLabel(label)
				if err != nil {
					return fmt.Errorf("fixture %s: %w", fixture.Name, err)
				}
				litOf[code] = lit
			}

			enc := distribute.NewDecoderFromLiterals(litOf)
			decoded := enc.Decode(fixture.PrefixCodes)
			distributed, err := distribute.Distribute(decoded)
			if err != nil {
				return err
			}
			clauses := extract.Clauses(distributed, formula.SoftWeight(1.0))
			for _, cl := range clauses {
				fmt.Fprintln(cmd.OutOrStdout(), cl.String())
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "replayed %s: %d clauses, expected %d\n",
				fixture.Name, len(clauses), len(fixture.ExpectedClauses))
			return nil
		},
	}
	c.Flags().StringVar(&corpusPath, "corpus", "", "corpus SQLite database path (required)")
	c.MarkFlagRequired("corpus")
	return c
}

// parseLiteralLabel decodes a "+pred(args)" or "-pred(args)" fixture label
// into a Literal with an opaque, argument-free predicate symbol equal to the
// label's body; fixtures only need structural identity, not real arguments.
func parseLiteralLabel(label string) (formula.Literal, error) {
	if len(label) == 0 {
		return formula.Literal{}, fmt.Errorf("empty atom label")
	}
	negated := false
	switch label[0] {
	case '+':
	case '-':
		negated = true
	default:
		return formula.Literal{}, fmt.Errorf("atom label %q must start with + or -", label)
	}
	predicate := strings.TrimSpace(label[1:])
	atom := formula.AtomicFormula{Predicate: predicate}
	if negated {
		return formula.Negative(atom), nil
	}
	return formula.Positive(atom), nil
}
