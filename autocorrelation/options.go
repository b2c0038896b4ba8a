// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for New.

package autocorrelation

import (
	"math"

	"github.com/rs/zerolog"
)

// Defaults applied by New.
const (
	DefaultMinSnapshots    = 100
	DefaultSwitchesPerEdge = 1
)

// BudgetFunc returns the number of switching attempts that bridge a gap of
// gap rounds before the next checkpoint.
type BudgetFunc func(gap, switchesPerEdge, initialEdges uint64) uint64

// LinearBudget is the default budget gap · switchesPerEdge · initialEdges.
func LinearBudget(gap, switchesPerEdge, initialEdges uint64) uint64 {
	return gap * switchesPerEdge * initialEdges
}

// Option configures an Analysis.
type Option func(*options)

type options struct {
	minSnapshots    int
	maxSnapshots    int
	switchesPerEdge uint64
	budget          BudgetFunc
	seed            uint64
	log             zerolog.Logger
	algoLabel       string
	graphLabel      string
	hook            func(done, total int)
}

func defaultOptions() options {
	return options{
		minSnapshots:    DefaultMinSnapshots,
		maxSnapshots:    math.MaxInt,
		switchesPerEdge: DefaultSwitchesPerEdge,
		budget:          LinearBudget,
		log:             zerolog.Nop(),
		algoLabel:       "default",
		graphLabel:      "default",
	}
}

// WithMinSnapshots sets the number of snapshots the largest thinning must
// see at least. New rejects values < 1.
func WithMinSnapshots(k int) Option {
	return func(o *options) { o.minSnapshots = k }
}

// WithMaxSnapshots caps the snapshots processed per thinning.
// New rejects values < 1.
func WithMaxSnapshots(k int) Option {
	return func(o *options) { o.maxSnapshots = k }
}

// WithSwitchesPerEdge sets the attempts per initial edge and round.
func WithSwitchesPerEdge(x uint64) Option {
	return func(o *options) { o.switchesPerEdge = x }
}

// WithBudget replaces LinearBudget. Panics on nil.
func WithBudget(fn BudgetFunc) Option {
	if fn == nil {
		panic("autocorrelation: WithBudget(nil)")
	}
	return func(o *options) { o.budget = fn }
}

// WithSeed records the seed the chain was started with in every Record.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithLogger sets the logger for the configuration header and per-checkpoint
// debug lines.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithLabels names the algorithm and the input graph in log output.
func WithLabels(algorithm, graph string) Option {
	return func(o *options) {
		o.algoLabel = algorithm
		o.graphLabel = graph
	}
}

// WithSnapshotHook registers fn, called after each checkpoint with the
// number of checkpoints done and the total. nil removes the hook.
func WithSnapshotHook(fn func(done, total int)) Option {
	return func(o *options) { o.hook = fn }
}
