// Package builder internal helpers and constants shared by constructors.
package builder

import (
	"sort"

	"github.com/katalvlaran/graphmix/core"
)

// Canonical constructor names used as error context.
const (
	MethodErdosRenyi = "ErdosRenyi"
	MethodHyperbolic = "Hyperbolic"
	MethodCycle      = "Cycle"
	MethodMatching   = "Matching"
)

// Probability domain shared by stochastic constructors.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// sortEdges orders edges by (U,V) ascending.
func sortEdges(edges []core.Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
}

// canonicalEdge orders an endpoint pair so that U < V.
func canonicalEdge(u, v int) core.Edge {
	if u > v {
		u, v = v, u
	}

	return core.Edge{U: u, V: v}
}
