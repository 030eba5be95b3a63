// Package pathorder computes short visiting orders over sets of 2-D
// elements that can each be traversed in more than one way.
//
// 🚀 What is pathorder?
//
//	A small, deterministic library for the open-path Travelling Salesman
//	Problem, generalized so that every element offers one or more
//	orientations — (entry, exit) point pairs describing the possible ways
//	to traverse it — and so that the path may be pinned to start near a
//	fixed external point:
//		• openpath/ — the random-insertion heuristic over oriented elements
//		• geom/     — the minimal 2-D point arithmetic the solver consumes
//
// ✨ Why choose pathorder?
//
//   - Deterministic – fixed, documented RNG seed; identical inputs always
//     produce identical orders, on every platform
//   - Generic – elements are opaque values of any type; the solver only
//     ever sees their orientation candidates
//   - Pure Go – no cgo, no hidden deps
//   - Honest about quality – a heuristic within roughly 10% of optimal on
//     random inputs, never sold as exact
//
// Typical uses: ordering engraving or cutting strokes for a toolhead,
// sequencing pen-plotter polylines, batching pick-up/drop-off segments —
// anywhere the cost you care about is the travel between elements, and
// each element can be entered from more than one side.
//
// Quick ASCII example:
//
//	 A──────▶        ◀──────B
//	        └───travel───┘
//
//	two strokes, each traversable in either direction; the solver picks
//	both the order and the directions that keep the travel short.
//
// Dive into openpath's package docs for the algorithm, its guarantees,
// and its deliberate non-goals.
//
//	go get github.com/katalvlaran/pathorder/openpath
package pathorder
