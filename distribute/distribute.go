package distribute

import "mlnforge/formula"

// Distribute converts an NNF formula into CNF shape (top-level ∧ of ∨ of
// literals), using the fast integer-encoded path when the formula satisfies
// CanFastDistribute and falling back to the generic exponential distributor
// otherwise, including when the fast path's flattening safety net rejects a
// non-flat conjunction group.
func Distribute(f formula.FormulaConstruct) (formula.FormulaConstruct, error) {
	enc := NewEncoder()
	codes, err := enc.Encode(f)
	if err != nil {
		return nil, err
	}
	if CanFastDistribute(codes) {
		if result, ok := FastDistribute(f, enc); ok {
			return result, nil
		}
	}
	return GenericDistribute(f), nil
}
