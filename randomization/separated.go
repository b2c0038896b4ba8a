// SPDX-License-Identifier: MIT
//
// File: separated.go
// Role: phase-separated driver running each move type in its own block.

package randomization

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/graphmix/core"
)

// Separated runs the moves of a Switching engine grouped by type: first
// all insertions/deletions, then all hinge flips, then all edge switches.
// With N = NumberOfSwitches and shares (pID,pHF,pES) each phase performs
// floor(N·p) attempts of its type only; lazy steps are not performed.
//
// Every other method is the embedded engine's.
type Separated struct {
	*Switching
}

// NewSeparated constructs the engine with New and wraps it.
func NewSeparated(g *core.Graph, intervals []DegreeInterval, opts ...Option) (*Separated, error) {
	sw, err := New(g, intervals, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewSeparated: %w", err)
	}

	return &Separated{Switching: sw}, nil
}

// Run executes the three phases. NumberOfSwitches and the type distribution
// are restored afterwards, also when a phase fails or ctx is cancelled.
func (p *Separated) Run(ctx context.Context) error {
	sw := p.Switching
	total := sw.numberOfSwitches
	pID, pHF, pES := sw.pID, sw.pHF, sw.pES
	defer func() {
		sw.numberOfSwitches = total
		sw.pID, sw.pHF, sw.pES = pID, pHF, pES
	}()

	phases := [...]struct {
		name       string
		id, hf, es float64
		share      float64
	}{
		{"insert-delete", 1, 0, 0, pID},
		{"hinge-flip", 0, 1, 0, pHF},
		{"edge-switch", 0, 0, 1, pES},
	}
	for _, ph := range phases {
		sw.pID, sw.pHF, sw.pES = ph.id, ph.hf, ph.es
		sw.numberOfSwitches = uint64(math.Floor(float64(total) * ph.share))
		if err := sw.Run(ctx); err != nil {
			return fmt.Errorf("Separated.Run: %s phase: %w", ph.name, err)
		}
	}

	return nil
}
