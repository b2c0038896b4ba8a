// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: degree intervals, sampling strategies, statistics and sentinel errors.

package randomization

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the randomization package.
var (
	// ErrInvalidArgument marks every rejected constructor or setter input.
	// A more precise sentinel is wrapped alongside it where one exists.
	ErrInvalidArgument = errors.New("randomization: invalid argument")

	// ErrNilGraph indicates a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("randomization: graph is nil")

	// ErrTooFewNodes indicates a graph with fewer than four nodes.
	ErrTooFewNodes = errors.New("randomization: graph needs at least four nodes")

	// ErrIntervalCount indicates len(intervals) differs from the node count.
	ErrIntervalCount = errors.New("randomization: one degree interval per node required")

	// ErrMalformedInterval indicates Lower > Upper, a negative bound or
	// an upper bound above n-1.
	ErrMalformedInterval = errors.New("randomization: malformed degree interval")

	// ErrInfeasibleDegree indicates an initial degree outside its interval.
	ErrInfeasibleDegree = errors.New("randomization: graph does not match degree intervals")

	// ErrCancelled is returned (together with ctx.Err()) when Run stops early.
	ErrCancelled = errors.New("randomization: run cancelled")

	// ErrGraphMoved indicates Run was called after MoveGraph.
	ErrGraphMoved = errors.New("randomization: graph was moved out of the engine")
)

// DegreeInterval bounds the degree of one node: Lower ≤ deg ≤ Upper.
type DegreeInterval struct {
	Lower int
	Upper int
}

// contains reports whether d lies inside the interval.
func (iv DegreeInterval) contains(d int) bool {
	return iv.Lower <= d && d <= iv.Upper
}

// SamplingStrategy selects how move participants are drawn.
type SamplingStrategy int

const (
	// SampleSingleEdges draws hinge-flip and edge-switch sources
	// proportionally to their degree and their partners among neighbors.
	SampleSingleEdges SamplingStrategy = iota

	// SampleSingleTuples draws every participant uniformly and independently.
	SampleSingleTuples

	// SampleGlobalTuples reads participants from a shuffled permutation of
	// all nodes, reshuffling when it runs out.
	SampleGlobalTuples
)

// String returns the strategy name used in logs and labels.
func (s SamplingStrategy) String() string {
	switch s {
	case SampleSingleEdges:
		return "single-edges"
	case SampleSingleTuples:
		return "single-tuples"
	case SampleGlobalTuples:
		return "global-tuples"
	default:
		return fmt.Sprintf("SamplingStrategy(%d)", int(s))
	}
}

// Statistics counts attempts and successes per move type since the last
// ResetStatistics. Insertions and deletions are split out of the combined
// insert/delete counters once the sampled pair is known to be distinct.
type Statistics struct {
	AttemptedInsertionsDeletions  uint64
	SuccessfulInsertionsDeletions uint64
	AttemptedInsertions           uint64
	SuccessfulInsertions          uint64
	AttemptedDeletions            uint64
	SuccessfulDeletions           uint64
	AttemptedHingeFlips           uint64
	SuccessfulHingeFlips          uint64
	AttemptedEdgeSwitches         uint64
	SuccessfulEdgeSwitches        uint64
	Lazy                          uint64
}

// Attempted returns the number of attempts including lazy steps.
func (st Statistics) Attempted() uint64 {
	return st.AttemptedInsertionsDeletions + st.AttemptedHingeFlips + st.AttemptedEdgeSwitches + st.Lazy
}

// Successful returns the number of applied moves of all three types.
func (st Statistics) Successful() uint64 {
	return st.SuccessfulInsertionsDeletions + st.SuccessfulHingeFlips + st.SuccessfulEdgeSwitches
}

// Map returns the counters keyed by their camelCase names.
func (st Statistics) Map() map[string]uint64 {
	return map[string]uint64{
		"attemptedInsertionsDeletions":  st.AttemptedInsertionsDeletions,
		"successfulInsertionsDeletions": st.SuccessfulInsertionsDeletions,
		"attemptedInsertions":           st.AttemptedInsertions,
		"successfulInsertions":          st.SuccessfulInsertions,
		"attemptedDeletions":            st.AttemptedDeletions,
		"successfulDeletions":           st.SuccessfulDeletions,
		"attemptedHingeFlips":           st.AttemptedHingeFlips,
		"successfulHingeFlips":          st.SuccessfulHingeFlips,
		"attemptedEdgeSwitches":         st.AttemptedEdgeSwitches,
		"successfulEdgeSwitches":        st.SuccessfulEdgeSwitches,
		"lazy":                          st.Lazy,
	}
}
