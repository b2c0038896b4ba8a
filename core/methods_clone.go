// File: methods_clone.go
// Role: Deep copies and equality.
// Concurrency:
//   - Read lock on the source; the clone is fresh and unshared.

package core

// Clone returns a deep copy of g. Neighbor slot order is preserved, so a
// randomized process run on the clone draws the same neighbors as on g.
// Complexity: O(n + m)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adj)
	clone := &Graph{
		adj: make([][]int, n),
		pos: make([]map[int]int, n),
		m:   g.m,
	}
	for u := 0; u < n; u++ {
		clone.adj[u] = append(make([]int, 0, len(g.adj[u])), g.adj[u]...)
		clone.pos[u] = make(map[int]int, len(g.pos[u]))
		for v, i := range g.pos[u] {
			clone.pos[u][v] = i
		}
	}

	return clone
}

// Equal reports whether g and h have the same node count and edge set.
// Slot order is ignored.
// Complexity: O(n + m)
func (g *Graph) Equal(h *Graph) bool {
	if g == h {
		return true
	}
	if g.NumberOfNodes() != h.NumberOfNodes() || g.NumberOfEdges() != h.NumberOfEdges() {
		return false
	}
	equal := true
	g.ForEdges(func(u, v int) {
		if equal && !h.HasEdge(u, v) {
			equal = false
		}
	})

	return equal
}
