// Package openpath - travel-cost reconstruction.
//
// PathCost recomputes, from a Result, the objective the heuristic
// minimized. It exists so that callers (and tests) can compare orderings
// without reaching into solver internals.
//
// Design:
//   - Strict sentinels from types.go on any invalid shape.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise
//     when costs are compared for equality.
package openpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathorder/geom"
)

// roundScale controls cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 rounds x to 9 decimal places.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// PathCost returns the total travel cost of a Result: the distance from
// start to the first element's entry point (when start is non-nil) plus
// each exit→next-entry gap along the order. Distances covered inside
// elements are the caller's own affair and are not included — exactly as
// in the solver's objective.
//
// The resolver is called once per element; shape violations surface as
// ErrLengthMismatch, ErrNilOrientationFunc, ErrNoOrientations or
// ErrOrientationIndex.
//
// Complexity: O(n) resolver calls, O(1) extra space.
func PathCost[E any](res Result[E], orientations OrientationFunc[E], start *geom.Point) (float64, error) {
	if len(res.Elements) != len(res.Orientations) {
		return 0, ErrLengthMismatch
	}
	if len(res.Elements) == 0 {
		return 0, nil
	}
	if orientations == nil {
		return 0, ErrNilOrientationFunc
	}

	var (
		total    float64
		prevExit geom.Point
		i        int
	)
	for i = 0; i < len(res.Elements); i++ {
		var cands = orientations(res.Elements[i])
		if len(cands) == 0 {
			return 0, fmt.Errorf("%w (element %d)", ErrNoOrientations, i)
		}
		if res.Orientations[i] < 0 || res.Orientations[i] >= len(cands) {
			return 0, fmt.Errorf("%w (element %d: index %d, %d candidates)",
				ErrOrientationIndex, i, res.Orientations[i], len(cands))
		}
		var o = cands[res.Orientations[i]]

		if i == 0 {
			if start != nil {
				total += start.Distance(o.Entry)
			}
		} else {
			total += prevExit.Distance(o.Entry)
		}
		prevExit = o.Exit
	}

	return round1e9(total), nil
}
