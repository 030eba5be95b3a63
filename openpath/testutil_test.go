// Package openpath_test - shared fixtures for the openpath test suite.
//
// Two synthetic element kinds cover the solver's whole contract:
//   - site: a point-like element with a single orientation whose entry
//     and exit coincide (the plain TSP case).
//   - seg: a line segment traversable in either direction, i.e. two
//     asymmetric orientations (the oriented case).
package openpath_test

import (
	"testing"

	"github.com/katalvlaran/pathorder/geom"
	"github.com/katalvlaran/pathorder/openpath"
)

// siteOrientations resolves a point-like element: one orientation,
// entry == exit.
func siteOrientations(p geom.Point) []openpath.Orientation {
	return []openpath.Orientation{{Entry: p, Exit: p}}
}

// seg is a reversible line segment between A and B.
type seg struct {
	A, B geom.Point
}

// segOrientations resolves a segment: forward (A→B) at index 0,
// reverse (B→A) at index 1.
func segOrientations(s seg) []openpath.Orientation {
	return []openpath.Orientation{
		{Entry: s.A, Exit: s.B},
		{Entry: s.B, Exit: s.A},
	}
}

// collinearSites returns point elements at the given x coordinates on
// the y=0 line.
func collinearSites(xs ...float64) []geom.Point {
	var out = make([]geom.Point, len(xs))
	for i, x := range xs {
		out[i] = geom.Point{X: x}
	}
	return out
}

// Repeat runs fn count times as subtests; used to lock determinism.
func Repeat(t *testing.T, count int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < count; i++ {
		fn(t)
	}
}
