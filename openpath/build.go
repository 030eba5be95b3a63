// Package openpath - FindPath, the random-insertion entry point.
//
// Pipeline:
//  1. Validate inputs (fail fast; see validate.go).
//  2. Wrap every element in an arena waypoint, caching its candidates.
//  3. Shuffle the insertion order with a deterministically seeded RNG.
//  4. Seed the path with the first shuffled waypoint.
//  5. For each remaining waypoint, scan every (position, orientation)
//     pair and commit the cheapest (insert.go).
//  6. Linearize the path into the Result (waypoint.go).
//
// Design principles:
//   - Deterministic: all randomness flows from rngFromSeed; nothing
//     depends on map order or time.
//   - No hidden allocations in the insertion loop: the arena and link
//     slices are sized up front.
package openpath

import (
	"fmt"

	"github.com/katalvlaran/pathorder/geom"
)

// FindPath computes a short visiting order over elements, choosing one
// orientation per element, using the random-insertion heuristic.
//
// Contracts:
//   - orientations must be non-nil and return ≥1 candidate per element
//     (ErrNilOrientationFunc / ErrNoOrientations otherwise).
//   - Empty elements ⇒ empty Result, nil error.
//   - The Result is a permutation of elements; no element is dropped.
//   - Identical arguments ⇒ identical Results (see Options.Seed).
//
// Side effects: none; elements are copied, never mutated, and each call
// owns its working state exclusively (concurrent calls are safe).
//
// Complexity: O(n²·k) time for n elements with at most k orientations
// each, O(n) extra space.
func FindPath[E any](elements []E, orientations OrientationFunc[E], opts Options) (Result[E], error) {
	// Stage 1 - trivial and malformed inputs.
	var n = len(elements)
	if n == 0 {
		return Result[E]{}, nil
	}
	if orientations == nil {
		return Result[E]{}, ErrNilOrientationFunc
	}

	// Stage 2 - wrap elements into the waypoint arena.
	wps, err := fillWaypoints(elements, orientations)
	if err != nil {
		return Result[E]{}, err
	}

	// Stage 3 - deterministic shuffle of the insertion order.
	// Insertion order materially affects the greedy result's quality;
	// randomizing it under a fixed seed gives reproducible, empirically
	// good average-case paths without trying many orderings.
	var (
		rng   = rngFromSeed(opts.Seed)
		order = make([]int, n)
	)
	var i int
	for i = 0; i < n; i++ {
		order[i] = i
	}
	shuffleOrderInPlace(order, rng)

	// Stage 4 - seed the path with the first shuffled waypoint.
	var path = newLinkedPath(n)
	seedPath(wps, order[0], opts.Start, path)

	// Stage 5 - insert the remaining waypoints one by one.
	var (
		wi   int
		plan insertionPlan
		cur  int
		nxt  int
	)
	for i = 1; i < n; i++ {
		wi = order[i]
		plan = newInsertionPlan()

		// Front position first.
		tryInsertFront(&wps[wi], opts.Start, &wps[path.head], path.head, &plan)

		// Then every remaining position, left to right; the pair whose
		// successor is absent is the back position.
		for cur = path.head; cur != noIndex; cur = path.next[cur] {
			nxt = path.next[cur]
			if nxt == noIndex {
				tryInsertBack(&wps[wi], &wps[cur], &plan)
			} else {
				tryInsertMiddle(&wps[wi], &wps[cur], &wps[nxt], nxt, &plan)
			}
		}

		// Every waypoint has ≥1 orientation, so the scan always found a
		// finite-cost pair.
		if plan.orientation == noIndex {
			panic("openpath: internal: insertion scan found no candidate")
		}

		wps[wi].chosen = plan.orientation
		if plan.before == noIndex {
			path.pushBack(wi)
		} else {
			path.insertBefore(wi, plan.before)
		}
	}

	// Stage 6 - copy elements and chosen orientations out, in path order.
	return linearize(wps, path), nil
}

// fillWaypoints puts every element in an arena waypoint, caching its
// orientation candidates. The resolver is called exactly once per
// element; a zero-candidate element aborts the run.
//
// Complexity: O(n) resolver calls.
func fillWaypoints[E any](elements []E, orientations OrientationFunc[E]) ([]waypoint[E], error) {
	var wps = make([]waypoint[E], len(elements))

	var i int
	for i = 0; i < len(elements); i++ {
		var cands = orientations(elements[i])
		if len(cands) == 0 {
			return nil, fmt.Errorf("%w (element %d)", ErrNoOrientations, i)
		}
		wps[i] = waypoint[E]{
			element:      elements[i],
			orientations: cands,
			chosen:       noIndex,
		}
	}
	return wps, nil
}

// seedPath places the first waypoint.
//
// Free start: orientation 0 — arbitrary, nothing external constrains it.
// Pinned start: the orientation whose entry point is nearest the start,
// strict less-than, first minimum winning.
func seedPath[E any](wps []waypoint[E], first int, start *geom.Point, path *linkedPath) {
	if start == nil {
		wps[first].chosen = 0
		path.pushBack(first)
		return
	}

	var (
		best     = -1
		bestDist float64
		o        int
		d        float64
	)
	for o = 0; o < len(wps[first].orientations); o++ {
		d = start.Distance(wps[first].orientations[o].Entry)
		if best == -1 || d < bestDist {
			best = o
			bestDist = d
		}
	}
	wps[first].chosen = best
	path.pushBack(first)
}
