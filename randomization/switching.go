// SPDX-License-Identifier: MIT
//
// File: switching.go
// Role: the Switching engine: construction, Run loop, setters and getters.

package randomization

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/graphmix/core"
)

const minNodes = 4

// Switching is a Markov chain over simple graphs whose degrees stay inside
// per-node intervals. It owns a private copy of the input graph.
//
// A Switching is not safe for concurrent use.
type Switching struct {
	g         *core.Graph
	intervals []DegreeInterval

	rng *rand.Rand
	log zerolog.Logger

	// weighted draws node ids proportionally to their upper bound;
	// nil when every upper bound is zero.
	weighted *distuv.Categorical

	strategy SamplingStrategy
	sampler  sampler
	// global keeps its permutation and cursor across runs and strategy changes.
	global *globalTuples

	numberOfSwitches uint64
	pID, pHF, pES    float64

	stats Statistics
}

// New validates g against intervals and returns an engine working on a
// clone of g.
//
// Errors (all wrap ErrInvalidArgument except ErrNilGraph):
//   - ErrTooFewNodes       if n < 4.
//   - ErrIntervalCount     if len(intervals) != n.
//   - ErrMalformedInterval if Lower < 0, Lower > Upper or Upper > n-1.
//   - ErrInfeasibleDegree  if some degree lies outside its interval.
//
// Complexity: O(n + m).
func New(g *core.Graph, intervals []DegreeInterval, opts ...Option) (*Switching, error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NumberOfNodes()
	if n < minNodes {
		return nil, fmt.Errorf("New: n=%d: %w: %w", n, ErrInvalidArgument, ErrTooFewNodes)
	}
	if len(intervals) != n {
		return nil, fmt.Errorf("New: %d intervals for %d nodes: %w: %w",
			len(intervals), n, ErrInvalidArgument, ErrIntervalCount)
	}
	weights := make([]float64, n)
	positive := false
	for u, iv := range intervals {
		if iv.Lower < 0 || iv.Lower > iv.Upper || iv.Upper > n-1 {
			return nil, fmt.Errorf("New: node %d interval [%d,%d]: %w: %w",
				u, iv.Lower, iv.Upper, ErrInvalidArgument, ErrMalformedInterval)
		}
		if d := g.Degree(u); !iv.contains(d) {
			return nil, fmt.Errorf("New: node %d degree %d not in [%d,%d]: %w: %w",
				u, d, iv.Lower, iv.Upper, ErrInvalidArgument, ErrInfeasibleDegree)
		}
		weights[u] = float64(iv.Upper)
		positive = positive || iv.Upper > 0
	}

	s := &Switching{
		g:                g.Clone(),
		intervals:        append([]DegreeInterval(nil), intervals...),
		rng:              o.rng,
		log:              o.log,
		strategy:         SampleSingleEdges,
		sampler:          singleEdges{},
		numberOfSwitches: uint64(math.Ceil(float64(g.NumberOfEdges()) * o.switchesPerEdge)),
		pID:              1.0 / 6,
		pHF:              1.0 / 6,
		pES:              1.0 / 6,
	}
	if positive {
		cat := distuv.NewCategorical(weights, o.rng)
		s.weighted = &cat
	}

	return s, nil
}

// Run performs exactly NumberOfSwitches attempts. Each attempt draws
// r ∈ [0,1) and tries an insertion/deletion if r < pID, a hinge flip if
// r < pID+pHF, an edge switch if r < pID+pHF+pES and is lazy otherwise.
// Rejected attempts leave the graph untouched but count as attempts.
//
// ctx is checked before each attempt. On cancellation Run keeps the
// progress made so far and returns an error wrapping both ErrCancelled
// and ctx.Err(). Run may be called repeatedly; graph, generator and
// counters carry over.
func (s *Switching) Run(ctx context.Context) error {
	if s.g == nil {
		return fmt.Errorf("Run: %w", ErrGraphMoved)
	}

	pIDHF := s.pID + s.pHF
	pAny := pIDHF + s.pES
	before := s.stats

	var err error
	var i uint64
	for i = 0; i < s.numberOfSwitches; i++ {
		if cerr := ctx.Err(); cerr != nil {
			err = fmt.Errorf("Run: after %d of %d attempts: %w: %w", i, s.numberOfSwitches, ErrCancelled, cerr)
			break
		}

		r := s.rng.Float64()
		switch {
		case r < s.pID:
			s.stats.AttemptedInsertionsDeletions++
			if s.sampler.insertDelete(s) {
				s.stats.SuccessfulInsertionsDeletions++
			}
		case r < pIDHF:
			s.stats.AttemptedHingeFlips++
			if s.sampler.hingeFlip(s) {
				s.stats.SuccessfulHingeFlips++
			}
		case r < pAny:
			s.stats.AttemptedEdgeSwitches++
			if s.sampler.edgeSwitch(s) {
				s.stats.SuccessfulEdgeSwitches++
			}
		default:
			s.stats.Lazy++
		}
	}

	s.log.Debug().
		Str("strategy", s.strategy.String()).
		Uint64("attempts", i).
		Uint64("successful", s.stats.Successful()-before.Successful()).
		Int("edges", s.g.NumberOfEdges()).
		Bool("cancelled", err != nil).
		Msg("switching run finished")

	return err
}

// SetNumberOfSwitches sets the number of attempts of the next Run.
func (s *Switching) SetNumberOfSwitches(x uint64) {
	s.numberOfSwitches = x
}

// NumberOfSwitches returns the number of attempts the next Run performs.
func (s *Switching) NumberOfSwitches() uint64 {
	return s.numberOfSwitches
}

// SetSwitchingTypeDistribution sets the probabilities of the three move
// types; the remaining mass 1-(id+hf+es) is lazy. It fails with
// ErrInvalidArgument if any value is negative or NaN or the sum exceeds 1.
func (s *Switching) SetSwitchingTypeDistribution(insertDelete, hingeFlip, edgeSwitch float64) error {
	for _, p := range []float64{insertDelete, hingeFlip, edgeSwitch} {
		if math.IsNaN(p) || p < 0 {
			return fmt.Errorf("SetSwitchingTypeDistribution: probability %g: %w", p, ErrInvalidArgument)
		}
	}
	if sum := insertDelete + hingeFlip + edgeSwitch; sum > 1 {
		return fmt.Errorf("SetSwitchingTypeDistribution: sum %g exceeds 1: %w", sum, ErrInvalidArgument)
	}
	s.pID, s.pHF, s.pES = insertDelete, hingeFlip, edgeSwitch

	return nil
}

// InsertionDeletionProbability returns the insert/delete share.
func (s *Switching) InsertionDeletionProbability() float64 { return s.pID }

// HingeFlipProbability returns the hinge-flip share.
func (s *Switching) HingeFlipProbability() float64 { return s.pHF }

// EdgeSwitchProbability returns the edge-switch share.
func (s *Switching) EdgeSwitchProbability() float64 { return s.pES }

// SetSamplingStrategy selects the participant sampler for subsequent runs.
// Unknown values fail with ErrInvalidArgument.
func (s *Switching) SetSamplingStrategy(st SamplingStrategy) error {
	switch st {
	case SampleSingleEdges:
		s.sampler = singleEdges{}
	case SampleSingleTuples:
		s.sampler = singleTuples{}
	case SampleGlobalTuples:
		if s.global == nil {
			s.global = newGlobalTuples(len(s.intervals))
		}
		s.sampler = s.global
	default:
		return fmt.Errorf("SetSamplingStrategy: %s: %w", st, ErrInvalidArgument)
	}
	s.strategy = st

	return nil
}

// SamplingStrategy returns the active strategy.
func (s *Switching) SamplingStrategy() SamplingStrategy { return s.strategy }

// Statistics returns a snapshot of the counters.
func (s *Switching) Statistics() Statistics { return s.stats }

// ResetStatistics zeroes all counters. Graph and generator are untouched.
func (s *Switching) ResetStatistics() { s.stats = Statistics{} }

// Graph returns the engine's current graph, or nil after MoveGraph.
// Callers must treat it as read-only while the engine is in use.
func (s *Switching) Graph() *core.Graph { return s.g }

// MoveGraph hands the graph out and detaches it from the engine.
// Run fails with ErrGraphMoved afterwards.
func (s *Switching) MoveGraph() *core.Graph {
	g := s.g
	s.g = nil

	return g
}

// Intervals returns a copy of the degree intervals.
func (s *Switching) Intervals() []DegreeInterval {
	return append([]DegreeInterval(nil), s.intervals...)
}
