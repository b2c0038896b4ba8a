// Package randomization - RNG utilities shared by the engine and its callers.
//
// Goals:
//   - Determinism: same seed ⇒ identical chain trajectory.
//   - Encapsulation: one generator factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand/v2.Rand is NOT goroutine-safe. Do not share a *rand.Rand
//     across goroutines; derive one stream per worker with DeriveSeed.
package randomization

import "math/rand/v2"

// DefaultSeed seeds the engine when neither WithSeed nor WithRand is given.
const DefaultSeed uint64 = 1

// pcgStream is the fixed second PCG word.
const pcgStream = 0x9e3779b97f4a7c15

// rngFromSeed returns a deterministic PCG-backed generator.
//
// Complexity: O(1).
func rngFromSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
// Distinct streams of one parent are decorrelated by a SplitMix64 finalizer,
// so run i of an experiment can use DeriveSeed(seed, i).
//
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
