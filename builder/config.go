// SPDX-License-Identifier: MIT
// Package: graphmix/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • rng defaults to nil; stochastic constructors fail with ErrNeedRandSource.
//   • newBuilderConfig applies options in order (later overrides earlier).

package builder

import "math/rand/v2"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// rng drives every stochastic choice; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig resolves opts over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
