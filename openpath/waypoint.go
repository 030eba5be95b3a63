// Package openpath - waypoint arena and the linked working path.
//
// Waypoints are value records stored in one contiguous slice (the arena)
// and referenced everywhere by their arena index. The working path is a
// doubly linked sequence over those indices, giving O(1) insertion at an
// arbitrary position without per-node allocation.
package openpath

import "fmt"

// noIndex marks "no arena index": an empty link, an unplaced waypoint's
// orientation, or the append-at-tail insertion position.
const noIndex = -1

// waypoint binds one element to its cached orientation candidates and,
// once placed, to the index of the chosen orientation.
//
// Lifecycle: created once per element at the start of a run; chosen is
// write-once, set exactly when the waypoint enters the working path; the
// record is consumed (element and chosen index copied out) when the path
// is linearized. The arena is owned exclusively by its run.
type waypoint[E any] struct {
	element      E
	orientations []Orientation
	chosen       int // orientation index; noIndex until placed
}

// chosenOrientation returns the orientation committed at placement.
// Reading it before placement is an internal invariant violation.
func (w *waypoint[E]) chosenOrientation() Orientation {
	if w.chosen == noIndex {
		panic("openpath: internal: chosen orientation read before placement")
	}
	return w.orientations[w.chosen]
}

// linkedPath is an ordered sequence of arena indices with O(1) insertion.
// next/prev are parallel to the arena; head/tail are arena indices or
// noIndex while empty.
type linkedPath struct {
	next []int
	prev []int
	head int
	tail int
	size int
}

// newLinkedPath returns an empty path over an arena of n waypoints.
func newLinkedPath(n int) *linkedPath {
	var p = &linkedPath{
		next: make([]int, n),
		prev: make([]int, n),
		head: noIndex,
		tail: noIndex,
	}
	var i int
	for i = 0; i < n; i++ {
		p.next[i] = noIndex
		p.prev[i] = noIndex
	}
	return p
}

// pushBack appends arena index i after the current tail.
func (p *linkedPath) pushBack(i int) {
	if p.tail == noIndex {
		p.head = i
		p.tail = i
		p.size++
		return
	}
	p.next[p.tail] = i
	p.prev[i] = p.tail
	p.tail = i
	p.size++
}

// insertBefore places arena index i immediately in front of at, which
// must already be in the path. Inserting before the head makes i the new
// head.
func (p *linkedPath) insertBefore(i, at int) {
	var before = p.prev[at]
	p.prev[i] = before
	p.next[i] = at
	p.prev[at] = i
	if before == noIndex {
		p.head = i
	} else {
		p.next[before] = i
	}
	p.size++
}

// linearize walks the path head→tail, copying each waypoint's element
// and chosen orientation index into a Result. Every waypoint must have
// been placed; a size mismatch means the insertion loop corrupted the
// links.
func linearize[E any](wps []waypoint[E], p *linkedPath) Result[E] {
	var res = Result[E]{
		Elements:     make([]E, 0, len(wps)),
		Orientations: make([]int, 0, len(wps)),
	}

	var i int
	for i = p.head; i != noIndex; i = p.next[i] {
		res.Elements = append(res.Elements, wps[i].element)
		res.Orientations = append(res.Orientations, wps[i].chosen)
	}

	if len(res.Elements) != len(wps) {
		panic(fmt.Sprintf("openpath: internal: linearized %d of %d waypoints", len(res.Elements), len(wps)))
	}
	return res
}
