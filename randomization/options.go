// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for New and NewSeparated.

package randomization

import (
	"math"
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// DefaultSwitchesPerEdge is the attempt budget per initial edge used by New.
const DefaultSwitchesPerEdge = 10.0

// Option configures a Switching engine at construction time.
type Option func(*options)

// options aggregates construction knobs. Later options override earlier ones.
type options struct {
	switchesPerEdge float64
	rng             *rand.Rand
	log             zerolog.Logger
}

// defaultOptions returns the construction defaults:
//   - switchesPerEdge: DefaultSwitchesPerEdge.
//   - rng:             PCG seeded with DefaultSeed.
//   - log:             zerolog.Nop().
func defaultOptions() options {
	return options{
		switchesPerEdge: DefaultSwitchesPerEdge,
		rng:             rngFromSeed(DefaultSeed),
		log:             zerolog.Nop(),
	}
}

// WithSwitchesPerEdge sets the attempt budget per initial edge;
// NumberOfSwitches becomes ceil(m·x). Panics on a negative or NaN x.
func WithSwitchesPerEdge(x float64) Option {
	if math.IsNaN(x) || x < 0 {
		panic("randomization: WithSwitchesPerEdge requires x >= 0")
	}
	return func(o *options) {
		o.switchesPerEdge = x
	}
}

// WithRand injects the generator. The engine advances it on every attempt.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("randomization: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed seeds a fresh PCG generator.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rngFromSeed(seed)
	}
}

// WithLogger sets the logger receiving one debug summary per Run.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}
