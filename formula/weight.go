package formula

import "fmt"

// Weight is either a soft real value or the Hard marker (conceptually
// infinite weight).
type Weight struct {
	Value float64
	Hard  bool
}

// HardWeight returns the hard-weight marker.
func HardWeight() Weight { return Weight{Hard: true} }

// SoftWeight wraps a finite real weight.
func SoftWeight(v float64) Weight { return Weight{Value: v} }

func (w Weight) String() string {
	if w.Hard {
		return "hard"
	}
	return fmt.Sprintf("%g", w.Value)
}

// WeightedFormula pairs a weight with a formula construct.
type WeightedFormula struct {
	Weight  Weight
	Formula FormulaConstruct
}
