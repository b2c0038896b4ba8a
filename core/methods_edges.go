// File: methods_edges.go
// Role: Edge lifecycle & queries: HasEdge/AddEdge/RemoveEdge/SwapEdge/ForEdges/Edges.
// Determinism:
//   - ForEdges visits u ascending, then u's neighbor slots in order.
//   - Edges() returns edges sorted by (U,V).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "sort"

// HasEdge reports whether {u,v} is an edge. Unknown nodes and u == v yield false.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdge(u, v)
}

// AddEdge inserts the undirected edge {u,v}.
//
// Steps:
//  1. Validate ids (ErrVertexNotFound) and loop (ErrLoopNotAllowed).
//  2. Reject an existing edge (ErrMultiEdgeNotAllowed).
//  3. Append v to adj[u] and u to adj[v], recording both slots.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(u) || !g.valid(v) {
		return ErrVertexNotFound
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if g.hasEdge(u, v) {
		return ErrMultiEdgeNotAllowed
	}
	g.link(u, v)
	g.link(v, u)
	g.m++

	return nil
}

// RemoveEdge deletes the undirected edge {u,v}.
// The last slot of each endpoint moves into the freed slot.
//
// Errors: ErrVertexNotFound, ErrEdgeNotFound.
// Complexity: O(1)
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(u) || !g.valid(v) {
		return ErrVertexNotFound
	}
	if !g.hasEdge(u, v) {
		return ErrEdgeNotFound
	}
	g.unlink(u, v)
	g.unlink(v, u)
	g.m--

	return nil
}

// SwapEdge replaces the edges {s1,t1} and {s2,t2} with {s1,t2} and {s2,t1}.
// Every precondition is checked before the first write, so the graph is either
// fully switched or untouched. Degrees of all four nodes are preserved.
//
// Errors:
//   - ErrVertexNotFound if any id is unknown.
//   - ErrLoopNotAllowed if a resulting edge would be a self-loop.
//   - ErrEdgeNotFound if a source edge is missing.
//   - ErrMultiEdgeNotAllowed if a target edge already exists.
//
// Complexity: O(1)
func (g *Graph) SwapEdge(s1, t1, s2, t2 int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(s1) || !g.valid(t1) || !g.valid(s2) || !g.valid(t2) {
		return ErrVertexNotFound
	}
	if s1 == t2 || s2 == t1 {
		return ErrLoopNotAllowed
	}
	if !g.hasEdge(s1, t1) || !g.hasEdge(s2, t2) {
		return ErrEdgeNotFound
	}
	if g.hasEdge(s1, t2) || g.hasEdge(s2, t1) {
		return ErrMultiEdgeNotAllowed
	}
	// With both sources present and both targets absent the pairs are disjoint,
	// so the four slot rewrites below never alias each other.
	g.retarget(s1, t1, t2)
	g.retarget(t1, s1, s2)
	g.retarget(s2, t2, t1)
	g.retarget(t2, s2, s1)

	return nil
}

// ForEdges calls fn once per edge with u < v.
// The order is stable for an unmodified graph. fn must not mutate g.
// Complexity: O(n + m)
func (g *Graph) ForEdges(fn func(u, v int)) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v {
				fn(u, v)
			}
		}
	}
}

// Edges returns all edges sorted by (U,V).
// Complexity: O(m log m)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.NumberOfEdges())
	g.ForEdges(func(u, v int) {
		out = append(out, Edge{U: u, V: v})
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// hasEdge is HasEdge without locking. The smaller adjacency is probed.
func (g *Graph) hasEdge(u, v int) bool {
	if !g.valid(u) || !g.valid(v) || u == v {
		return false
	}
	if len(g.pos[u]) > len(g.pos[v]) {
		u, v = v, u
	}
	_, ok := g.pos[u][v]

	return ok
}

// link appends v to adj[u].
func (g *Graph) link(u, v int) {
	g.pos[u][v] = len(g.adj[u])
	g.adj[u] = append(g.adj[u], v)
}

// unlink removes v from adj[u] by moving the last slot into its place.
func (g *Graph) unlink(u, v int) {
	i := g.pos[u][v]
	last := len(g.adj[u]) - 1
	w := g.adj[u][last]
	g.adj[u][i] = w
	g.pos[u][w] = i
	g.adj[u] = g.adj[u][:last]
	delete(g.pos[u], v)
}

// retarget rewrites the slot of old in adj[u] to hold repl.
func (g *Graph) retarget(u, old, repl int) {
	i := g.pos[u][old]
	g.adj[u][i] = repl
	delete(g.pos[u], old)
	g.pos[u][repl] = i
}
