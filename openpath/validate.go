// Package openpath - result validation shared by callers and tests.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - Only sentinel errors from types.go, wrapped with the offending
//     position where useful.
package openpath

import "fmt"

// ValidateResult checks the shape of a Result against the resolver that
// (re)produces each element's candidates:
//   - Elements and Orientations have equal length,
//   - every orientation index is within its element's candidate range.
//
// It cannot verify that Elements is a permutation of some original input
// — elements are opaque and need not be comparable — so callers owning
// the input compare multisets themselves when they need that guarantee.
//
// The resolver is called once per element.
//
// Complexity: O(n) resolver calls.
func ValidateResult[E any](res Result[E], orientations OrientationFunc[E]) error {
	if len(res.Elements) != len(res.Orientations) {
		return ErrLengthMismatch
	}
	if len(res.Elements) == 0 {
		return nil
	}
	if orientations == nil {
		return ErrNilOrientationFunc
	}

	var (
		i int
		k int
	)
	for i = 0; i < len(res.Elements); i++ {
		k = len(orientations(res.Elements[i]))
		if k == 0 {
			return fmt.Errorf("%w (element %d)", ErrNoOrientations, i)
		}
		if res.Orientations[i] < 0 || res.Orientations[i] >= k {
			return fmt.Errorf("%w (element %d: index %d, %d candidates)",
				ErrOrientationIndex, i, res.Orientations[i], k)
		}
	}
	return nil
}
