// Package openpath - public contract types and sentinel errors.
//
// Design principles (shared across the module):
//   - Strict sentinels: callers match with errors.Is; wrapping adds the
//     offending element index where that is genuinely useful.
//   - No logging, no panics on user input; panics are reserved for
//     internal invariant violations (programmer error).
//   - Elements are opaque values: copied in, copied out, never mutated.
package openpath

import (
	"errors"

	"github.com/katalvlaran/pathorder/geom"
)

// ErrNilOrientationFunc is returned when a non-empty element set is
// passed together with a nil OrientationFunc.
var ErrNilOrientationFunc = errors.New("openpath: nil orientation function")

// ErrNoOrientations is returned when an element resolves to zero
// orientation candidates. Every element must offer at least one way to
// traverse it; a silent skip would degrade the path unreported.
var ErrNoOrientations = errors.New("openpath: element has no orientation candidates")

// ErrLengthMismatch is returned by ValidateResult and PathCost when a
// Result's element and orientation-index sequences differ in length.
var ErrLengthMismatch = errors.New("openpath: elements and orientation indices differ in length")

// ErrOrientationIndex is returned by ValidateResult and PathCost when a
// Result carries an orientation index outside its element's candidate
// range.
var ErrOrientationIndex = errors.New("openpath: orientation index out of range")

// Orientation describes one way of traversing an element: the point at
// which the traversal enters it and the point at which it leaves.
// Entry and Exit may coincide (e.g. a point-like element).
type Orientation struct {
	Entry geom.Point
	Exit  geom.Point
}

// OrientationFunc resolves the orientation candidates of an element.
//
// Contract:
//   - Deterministic and side-effect free.
//   - Returns at least one candidate for every element; zero candidates
//     make FindPath fail with ErrNoOrientations.
//   - Called exactly once per element per FindPath run. PathCost and
//     ValidateResult call it again (once per element) when reconstructing
//     or checking a result.
type OrientationFunc[E any] func(E) []Orientation

// Result is the outcome of FindPath: the input elements in visiting
// order, paired with the chosen orientation index for each.
type Result[E any] struct {
	// Elements is a permutation of the input element sequence.
	Elements []E

	// Orientations holds, for each element of Elements, the index into
	// that element's OrientationFunc candidates chosen by the solver.
	// len(Orientations) == len(Elements).
	Orientations []int
}

// Options configures a FindPath run.
type Options struct {
	// Start optionally pins the path to begin near a fixed external
	// point: it acts as a virtual predecessor of the first element and
	// its distance to that element's entry point participates in every
	// front-insertion cost. Nil leaves the start of the path free.
	Start *geom.Point

	// Seed drives the insertion-order shuffle. Zero selects DefaultSeed
	// (same policy as passing DefaultSeed explicitly), so the zero value
	// of Options is fully deterministic. Any fixed value is equally
	// deterministic; distinct seeds merely explore different insertion
	// orders.
	Seed int64
}

// DefaultOptions returns the canonical configuration: free start,
// default seed.
func DefaultOptions() Options {
	return Options{}
}
