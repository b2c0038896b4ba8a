// SPDX-License-Identifier: MIT
// Package: graphmix/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors panic on meaningless inputs (nil RNG).
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand/v2"

// BuilderOption customizes constructor behavior by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithRand attaches an explicit generator. The generator is advanced by the
// constructors, so sharing it with a later consumer continues one stream.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a PCG-backed generator seeded with seed.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = NewRand(seed)
	}
}

// NewRand returns a PCG generator for seed. The stream word is fixed so a
// seed alone determines the sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream))
}

// pcgStream is the fixed second PCG word.
const pcgStream = 0x9e3779b97f4a7c15
