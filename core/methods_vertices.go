// File: methods_vertices.go
// Role: Node queries: counts, degrees, indexed neighbor access.
//
// Concurrency:
//   - All queries run under the read lock.

package core

// NumberOfNodes returns n.
// Complexity: O(1)
func (g *Graph) NumberOfNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// NumberOfEdges returns m.
// Complexity: O(1)
func (g *Graph) NumberOfEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m
}

// HasVertex reports whether u is a valid node id.
func (g *Graph) HasVertex(u int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.valid(u)
}

// Degree returns the number of neighbors of u, or 0 for an unknown node.
// Complexity: O(1)
func (g *Graph) Degree(u int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(u) {
		return 0
	}

	return len(g.adj[u])
}

// Degrees returns the degree of every node, indexed by node id.
// Complexity: O(n)
func (g *Graph) Degrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adj))
	for u := range g.adj {
		out[u] = len(g.adj[u])
	}

	return out
}

// IthNeighbor returns the neighbor stored in slot i of u's adjacency.
// Slots are not sorted; they are stable until an edge at u is removed.
//
// Errors:
//   - ErrVertexNotFound if u is unknown.
//   - ErrNeighborIndex if i is outside [0,Degree(u)).
//
// Complexity: O(1)
func (g *Graph) IthNeighbor(u, i int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(u) {
		return 0, ErrVertexNotFound
	}
	if i < 0 || i >= len(g.adj[u]) {
		return 0, ErrNeighborIndex
	}

	return g.adj[u][i], nil
}

// Neighbors returns a copy of u's neighbor slots (nil for an unknown node).
// Complexity: O(deg(u))
func (g *Graph) Neighbors(u int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(u) {
		return nil
	}
	out := make([]int, len(g.adj[u]))
	copy(out, g.adj[u])

	return out
}

// valid reports whether u is a node id. Caller holds a lock.
func (g *Graph) valid(u int) bool {
	return u >= 0 && u < len(g.adj)
}
