// SPDX-License-Identifier: MIT
// Package: graphmix/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach method context with %w, never by redefining sentinels.

package builder

import "errors"

// ErrTooFewVertices indicates the graph is smaller than a constructor requires.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidDegree indicates an average degree outside (0, n-1).
var ErrInvalidDegree = errors.New("builder: average degree out of range")

// ErrInvalidExponent indicates a power-law exponent not strictly greater than 2.
var ErrInvalidExponent = errors.New("builder: power-law exponent must exceed 2")

// ErrConstructFailed indicates a constructor could not complete (nil constructor,
// rejected edge, failing upstream generator).
var ErrConstructFailed = errors.New("builder: construction failed")
