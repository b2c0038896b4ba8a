// SPDX-License-Identifier: MIT
// Package: graphmix/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same n/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return wrapped sentinels.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmix/core"
)

// Constructor adds edges to g using the resolved builderConfig.
// Constructors MUST validate parameters before mutating g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with n nodes, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: O(n + len(bopts)) plus the cost of each constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(n)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addSorted inserts edges into g in ascending (U,V) order so neighbor slots do
// not depend on the iteration order of the source.
func addSorted(method string, g *core.Graph, edges []core.Edge) error {
	sortEdges(edges)
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", method, e.U, e.V, err, ErrConstructFailed)
		}
	}

	return nil
}
