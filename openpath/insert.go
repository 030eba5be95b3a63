// Package openpath - insertion-cost evaluation.
//
// One file per concern: this is the heart of the heuristic, the three
// position cases scanned for every not-yet-placed waypoint. All three
// share the running-minimum state in insertionPlan and the same strict
// less-than acceptance rule, so the first (position, orientation) pair
// reaching a given cost wins over later equal-cost pairs. The scan order
// — front, then middle positions left to right, then back; orientation
// indices ascending within each position — is therefore part of the
// reproducible behavior, though not a semantic promise.
package openpath

import (
	"math"

	"github.com/katalvlaran/pathorder/geom"
)

// insertionPlan is the running minimum of one insertion round.
type insertionPlan struct {
	cost        float64 // best travel-cost increase found so far
	orientation int     // orientation index achieving it
	before      int     // arena index to insert in front of; noIndex ⇒ append at tail
}

// newInsertionPlan returns a plan that any finite cost beats.
func newInsertionPlan() insertionPlan {
	return insertionPlan{
		cost:        math.Inf(1),
		orientation: noIndex,
		before:      noIndex,
	}
}

// tryInsertFront evaluates placing w before the path's current first
// waypoint, in every orientation of w.
//
// Cost: [dist(start, w.entry) when start is pinned] + dist(w.exit,
// first.entry). Note the historical formula: the start→first edge being
// displaced is NOT subtracted, so a pinned start biases the scan against
// front insertions. Preserved for reproducibility of the heuristic's
// decisions.
//
// Complexity: O(k) for k orientations of w.
func tryInsertFront[E any](w *waypoint[E], start *geom.Point, first *waypoint[E], firstIdx int, plan *insertionPlan) {
	var startOfFirst = first.chosenOrientation().Entry

	var (
		o    int
		cost float64
	)
	for o = 0; o < len(w.orientations); o++ {
		cost = w.orientations[o].Exit.Distance(startOfFirst)
		if start != nil {
			cost += start.Distance(w.orientations[o].Entry)
		}
		if cost < plan.cost {
			plan.cost = cost
			plan.orientation = o
			plan.before = firstIdx
		}
	}
}

// tryInsertMiddle evaluates placing w between the adjacent placed
// waypoints before and after, in every orientation of w.
//
// Cost: dist(before.exit, w.entry) + dist(w.exit, after.entry) −
// dist(before.exit, after.entry). The subtracted term removes the edge
// being replaced, making this the marginal path-length increase.
//
// Complexity: O(k).
func tryInsertMiddle[E any](w, before, after *waypoint[E], afterIdx int, plan *insertionPlan) {
	var (
		endOfBefore  = before.chosenOrientation().Exit
		startOfAfter = after.chosenOrientation().Entry
		removed      = endOfBefore.Distance(startOfAfter)
	)

	var (
		o    int
		cost float64
	)
	for o = 0; o < len(w.orientations); o++ {
		cost = endOfBefore.Distance(w.orientations[o].Entry) +
			w.orientations[o].Exit.Distance(startOfAfter) -
			removed
		if cost < plan.cost {
			plan.cost = cost
			plan.orientation = o
			plan.before = afterIdx
		}
	}
}

// tryInsertBack evaluates placing w after the path's current last
// waypoint, in every orientation of w.
//
// Cost: dist(last.exit, w.entry) — nothing is displaced at the open end.
//
// Complexity: O(k).
func tryInsertBack[E any](w, last *waypoint[E], plan *insertionPlan) {
	var endOfLast = last.chosenOrientation().Exit

	var (
		o    int
		cost float64
	)
	for o = 0; o < len(w.orientations); o++ {
		cost = endOfLast.Distance(w.orientations[o].Entry)
		if cost < plan.cost {
			plan.cost = cost
			plan.orientation = o
			plan.before = noIndex
		}
	}
}
