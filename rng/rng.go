// Package rng centralizes deterministic random generation for the randomized
// somkit primitives (weight initializers and their default data sets).
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Encapsulation: a single factory; no time-based sources hidden anywhere.
//   - Injection: every randomized API accepts a rand.Source, so tests and
//     parallel workers can each own an explicit stream.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
//   - Use Derive to create independent streams for parallel workers.
package rng

import "math/rand/v2"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed uint64 = 1

// pcgStream is the fixed PCG increment paired with every seed.
const pcgStream uint64 = 0x5851f42d4c957f2d

// New returns a deterministic PCG-backed *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewPCG(seed, pcgStream))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64 finalizer so that neighboring stream ids decorrelate.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// Derive creates an independent deterministic stream from base and a stream
// identifier. If base==nil, DefaultSeed is used as the parent. Otherwise one
// value is consumed from base, so repeated derivations with the same id
// still differ.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Uint64()
	}

	return rand.New(rand.NewPCG(deriveSeed(parent, stream), pcgStream))
}

// IntN returns a uniform integer in [lo, hi). It panics if hi <= lo.
func IntN(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo)
}
