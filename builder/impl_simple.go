// SPDX-License-Identifier: MIT
// Package: graphmix/builder
//
// impl_simple.go: deterministic fixtures: Cycle and Matching.
//
// Both constructors use every node of g, emit edges in ascending order and
// never consult cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmix/core"
)

const minCycleNodes = 3

// Cycle returns a Constructor adding the cycle 0-1-...-(n-1)-0 (n ≥ 3).
func Cycle() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.NumberOfNodes()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		edges := make([]core.Edge, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, canonicalEdge(i, (i+1)%n))
		}

		return addSorted(MethodCycle, g, edges)
	}
}

// Matching returns a Constructor adding {0,1},{2,3},... ; with odd n the last
// node stays isolated.
func Matching() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.NumberOfNodes()
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", MethodMatching, n, ErrTooFewVertices)
		}
		edges := make([]core.Edge, 0, n/2)
		for i := 0; i+1 < n; i += 2 {
			edges = append(edges, core.Edge{U: i, V: i + 1})
		}

		return addSorted(MethodMatching, g, edges)
	}
}
