// SPDX-License-Identifier: MIT
//
// File: intervals.go
// Role: helpers deriving degree intervals from a graph.

package randomization

import "github.com/katalvlaran/graphmix/core"

// IntervalsAround returns [deg(u)-below, deg(u)+above] for every node,
// clamped to [0, n-1]. The result is always feasible for g.
//
// Complexity: O(n).
func IntervalsAround(g *core.Graph, below, above int) []DegreeInterval {
	n := g.NumberOfNodes()
	out := make([]DegreeInterval, n)
	for u, d := range g.Degrees() {
		out[u] = DegreeInterval{
			Lower: max(0, d-max(0, below)),
			Upper: min(max(n-1, 0), d+max(0, above)),
		}
	}

	return out
}
