// SPDX-License-Identifier: MIT
//
// File: analysis.go
// Role: drives a chain through the schedule and scores every possible edge.

package autocorrelation

import (
	"context"
	"errors"
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/graphmix/core"
	"github.com/katalvlaran/graphmix/randomization"
)

// Sentinel errors returned by the autocorrelation package.
var (
	// ErrInvalidArgument indicates rejected thinnings, snapshot bounds or chain.
	ErrInvalidArgument = errors.New("autocorrelation: invalid argument")

	// ErrAlreadyRun indicates a second call to Analysis.Run.
	ErrAlreadyRun = errors.New("autocorrelation: analysis already run")
)

// Chain is the Markov chain surface the analysis drives.
// *randomization.Switching and *randomization.Separated implement it.
type Chain interface {
	Run(ctx context.Context) error
	SetNumberOfSwitches(x uint64)
	Statistics() randomization.Statistics
	ResetStatistics()
	Graph() *core.Graph
}

var (
	_ Chain = (*randomization.Switching)(nil)
	_ Chain = (*randomization.Separated)(nil)
)

// Analysis measures, per thinning t, how strongly the presence of each
// possible edge in one snapshot predicts its presence t rounds later.
type Analysis struct {
	chain     Chain
	thinnings []int
	opts      options

	index        PairIndex
	schedule     Schedule
	initialEdges int

	// per thinning: bits of the last processed snapshot, transition table
	// per possible edge, last processed checkpoint, processed count
	bits      []bits.Bits
	counters  [][]TransitionCounter
	prev      []int
	processed []int

	ran bool
}

// New prepares an analysis of chain starting from its current graph.
//
// Errors (wrapping ErrInvalidArgument):
//   - chain is nil or has no graph.
//   - thinnings is empty or contains a value < 1.
//   - minSnapshots or maxSnapshots < 1.
//
// Complexity: O(T · n²) memory for T thinnings over n nodes.
func New(chain Chain, thinnings []int, opts ...Option) (*Analysis, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if chain == nil || chain.Graph() == nil {
		return nil, fmt.Errorf("New: chain without graph: %w", ErrInvalidArgument)
	}
	sched, err := NewSchedule(thinnings, o.minSnapshots, o.maxSnapshots)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	g := chain.Graph()
	a := &Analysis{
		chain:        chain,
		thinnings:    append([]int(nil), thinnings...),
		opts:         o,
		index:        NewPairIndex(g.NumberOfNodes()),
		schedule:     sched,
		initialEdges: g.NumberOfEdges(),
		bits:         make([]bits.Bits, len(thinnings)),
		counters:     make([][]TransitionCounter, len(thinnings)),
		prev:         make([]int, len(thinnings)),
		processed:    make([]int, len(thinnings)),
	}

	initial := a.snapshot(g)
	for ti := range thinnings {
		a.bits[ti] = bits.New(a.index.Len())
		a.bits[ti].Set(initial)
		a.counters[ti] = make([]TransitionCounter, a.index.Len())
	}

	return a, nil
}

// Schedule returns the checkpoints Run will visit.
func (a *Analysis) Schedule() Schedule { return a.schedule }

// Run walks the schedule. Before checkpoint c it asks the chain for
// budget(c − previous checkpoint) attempts, runs it, records and resets its
// success counters and snapshots the graph. Thinning t processes the
// snapshot when it lies exactly t rounds after t's previous one and t has
// not reached maxSnapshots. Finally each thinning is scored edge by edge.
//
// Run may be called once; a second call returns ErrAlreadyRun. A chain
// error (including cancellation) is returned wrapped and no records are
// produced.
func (a *Analysis) Run(ctx context.Context) ([]Record, error) {
	if a.ran {
		return nil, fmt.Errorf("Run: %w", ErrAlreadyRun)
	}
	a.ran = true

	cps := a.schedule.Checkpoints
	a.opts.log.Info().
		Str("algo", a.opts.algoLabel).
		Str("graph", a.opts.graphLabel).
		Int("n", a.index.n).
		Int("initial_m", a.initialEdges).
		Int("chain_length", a.schedule.MinChainLength).
		Int("snapshots", len(cps)).
		Int("min_snapshots", a.opts.minSnapshots).
		Int("max_snapshots", a.opts.maxSnapshots).
		Uint64("switches_per_edge", a.opts.switchesPerEdge).
		Int("counter_bytes", 32*len(a.thinnings)*a.index.Len()).
		Msg("autocorrelation analysis")

	successful := make([]uint64, len(cps))
	last := 0
	for ci, cp := range cps {
		requested := a.opts.budget(uint64(cp-last), a.opts.switchesPerEdge, uint64(a.initialEdges))
		a.chain.SetNumberOfSwitches(requested)
		if err := a.chain.Run(ctx); err != nil {
			return nil, fmt.Errorf("Run: checkpoint %d of %d: %w", ci+1, len(cps), err)
		}
		successful[ci] = a.chain.Statistics().Successful()
		a.chain.ResetStatistics()

		current := a.snapshot(a.chain.Graph())
		for ti, t := range a.thinnings {
			if a.prev[ti]+t != cp || a.processed[ti] >= a.opts.maxSnapshots {
				continue
			}
			a.observe(ti, current)
			a.prev[ti] = cp
			a.processed[ti]++
		}
		last = cp

		a.opts.log.Debug().Int("checkpoint", cp).Uint64("successful", successful[ci]).Msg("snapshot")
		if a.opts.hook != nil {
			a.opts.hook(ci+1, len(cps))
		}
	}

	recs := make([]Record, len(a.thinnings))
	for ti, t := range a.thinnings {
		recs[ti] = a.score(ti)
		for ci := 0; ci <= a.schedule.lastCheckpoint(t, a.opts.maxSnapshots); ci++ {
			recs[ti].SuccessfulSwitches += successful[ci]
		}
	}

	return recs, nil
}

// snapshot returns the edge set of g as bits over the pair index.
func (a *Analysis) snapshot(g *core.Graph) bits.Bits {
	b := bits.New(a.index.Len())
	g.ForEdges(func(u, v int) {
		b.SetBit(a.index.Index(u, v), 1)
	})

	return b
}

// observe feeds the transition previous → current of every possible edge
// into thinning ti and makes current its previous snapshot.
func (a *Analysis) observe(ti int, current bits.Bits) {
	prev := a.bits[ti]
	row := a.counters[ti]
	for i := range row {
		row[i].Update(prev.Bit(i) == 1, current.Bit(i) == 1)
	}
	a.bits[ti].Set(current)
}

// score categorizes every possible edge of thinning ti by its delta-BIC.
func (a *Analysis) score(ti int) Record {
	r := Record{
		Thinning:           a.thinnings[ti],
		ProcessedSnapshots: a.processed[ti],
		Seed:               a.opts.seed,
	}
	for _, c := range a.counters[ti] {
		if c.IsNone() {
			continue
		}
		if c.DeltaBIC() < 0 {
			r.Independent++
		} else {
			r.NonIndependent++
		}
	}
	r.Uncategorized = a.index.Len() - r.Independent - r.NonIndependent

	return r
}
