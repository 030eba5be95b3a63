// Package openpath - deterministic RNG utilities.
//
// This file centralizes random generation for the insertion heuristic.
//
// Goals:
//   - Determinism: same seed ⇒ identical shuffle across platforms; no
//     time-based sources hidden anywhere.
//   - Encapsulation: a single RNG factory; the shuffle is the only
//     consumer of randomness in the package.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe, but every FindPath call
//     creates its own instance, so concurrent calls never share one.
package openpath

import "math/rand"

// DefaultSeed is the fixed seed used when Options.Seed is zero.
//
// The constant is arbitrary but load-bearing: together with the RNG
// algorithm (math/rand.NewSource, Go's additive lagged Fibonacci
// generator) and the Fisher–Yates shuffle below it pins down the exact
// insertion order, and therefore the exact output, of every default-seed
// run. Treat it as part of the package's compatibility surface.
const DefaultSeed int64 = 0xDECAFF

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffleOrderInPlace performs an in-place Fisher–Yates shuffle of a
// using rng. The caller supplies the RNG so that one stream drives the
// whole run.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleOrderInPlace(a []int, rng *rand.Rand) {
	var n = len(a)
	if n <= 1 {
		return
	}

	var (
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
