// Package cnf orchestrates the per-formula normalize → distribute → extract
// pipeline and its parallel dispatch across an independent set of formulas.
package cnf

import (
	"context"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"mlnforge/distribute"
	"mlnforge/extract"
	"mlnforge/formula"
	"mlnforge/normalize"
)

// Logger is the structured logger used by the pipeline. Replace it (or its
// output/level) to integrate with a host application's logging setup; the
// pure per-formula algorithms never log.
var Logger = logrus.New()

// Input is one formula submitted to MakeCNF. Build one with FromFormula,
// FromWeighted, or FromDefiniteClause.
type Input struct {
	formula   formula.FormulaConstruct
	definite  *formula.DefiniteClause
	weight    formula.Weight
	hasWeight bool
}

// FromFormula wraps a bare construct as a hard-weighted input.
func FromFormula(f formula.FormulaConstruct) Input {
	return Input{formula: f}
}

// FromWeighted wraps a construct with an explicit weight, preserved as-is.
func FromWeighted(w formula.Weight, f formula.FormulaConstruct) Input {
	return Input{formula: f, weight: w, hasWeight: true}
}

// FromDefiniteClause wraps a definite clause as a hard-weighted input; it is
// converted to the implication body ⇒ head before normalizing.
func FromDefiniteClause(d formula.DefiniteClause) Input {
	return Input{definite: &d}
}

func (in Input) resolve() formula.WeightedFormula {
	if in.definite != nil {
		head := formula.Atomic{Atom: in.definite.Head}
		body := in.definite.BodyFormula()
		if body == nil {
			return formula.WeightedFormula{Weight: formula.HardWeight(), Formula: head}
		}
		return formula.WeightedFormula{
			Weight:  formula.HardWeight(),
			Formula: formula.Implies{Left: body, Right: head},
		}
	}
	if in.hasWeight {
		return formula.WeightedFormula{Weight: in.weight, Formula: in.formula}
	}
	return formula.WeightedFormula{Weight: formula.HardWeight(), Formula: in.formula}
}

// MakeCNF compiles a set of formulas into their union of clauses. Formulas
// are processed independently across a bounded worker pool (one goroutine
// per formula, capped at GOMAXPROCS in flight via errgroup.SetLimit); on the
// first error, in-flight work is allowed to finish but its results are
// discarded, and the error belonging to the lowest input index is returned.
func MakeCNF(ctx context.Context, inputs []Input, constants formula.ConstantsSet) (*formula.ClauseSet, error) {
	result := formula.NewClauseSet()
	if len(inputs) == 0 {
		return result, nil
	}

	errs := make([]error, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			wf := in.resolve()
			normalized, err := normalize.Normalize(wf.Formula, constants)
			if err != nil {
				errs[i] = err
				return err
			}
			distributed, err := distribute.Distribute(normalized)
			if err != nil {
				errs[i] = err
				return err
			}
			clauses := extract.Clauses(distributed, wf.Weight)
			Logger.WithFields(logrus.Fields{"formula_index": i, "clauses": len(clauses)}).Debug("compiled formula")
			for _, c := range clauses {
				result.Add(c)
			}
			return nil
		})
	}

	if waitErr := g.Wait(); waitErr != nil {
		if err := firstIndexedError(errs); err != nil {
			Logger.WithError(err).Warn("cnf compilation aborted")
			return nil, err
		}
		return nil, waitErr
	}
	return result, nil
}

func firstIndexedError(errs []error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
