// SPDX-License-Identifier: MIT
// Package: graphmix/builder
//
// impl_erdos_renyi.go - Gilbert G(n,p) constructor backed by gonum's gen.Gnp.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - gonum samples into an empty simple.UndirectedGraph (it allocates the
//     nodes itself); node ids are mapped to 0..n-1 and the edge set is copied
//     into g in ascending (u,v) order.
//
// Complexity:
//   - Time: O(n + m) inside gen.Gnp plus O(m log m) for the ordered copy.

package builder

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/graphs/gen"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/graphmix/core"
)

// ErdosRenyi returns a Constructor that includes every unordered pair of
// distinct nodes of g independently with probability p.
func ErdosRenyi(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NumberOfNodes()
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodErdosRenyi, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodErdosRenyi, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodErdosRenyi, ErrNeedRandSource)
		}

		var edges []core.Edge
		if p == MaxProbability {
			edges = make([]core.Edge, 0, n*(n-1)/2)
			for u := 0; u < n; u++ {
				for v := u + 1; v < n; v++ {
					edges = append(edges, core.Edge{U: u, V: v})
				}
			}
		} else if p > MinProbability {
			dst := simple.NewUndirectedGraph()
			if err := gen.Gnp(dst, n, p, cfg.rng); err != nil {
				return fmt.Errorf("%s: gen.Gnp: %w: %w", MethodErdosRenyi, err, ErrConstructFailed)
			}
			index := denseIndex(dst)
			it := dst.Edges()
			edges = make([]core.Edge, 0, it.Len())
			for it.Next() {
				e := it.Edge()
				edges = append(edges, canonicalEdge(index[e.From().ID()], index[e.To().ID()]))
			}
		}

		return addSorted(MethodErdosRenyi, g, edges)
	}
}

// denseIndex maps the node ids gonum allocated to 0..n-1 in ascending id order.
func denseIndex(g *simple.UndirectedGraph) map[int64]int {
	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, u := range nodes {
		ids[i] = u.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	return index
}
