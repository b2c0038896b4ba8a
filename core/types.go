// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, sentinel errors, the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a node id outside [0,n).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNeighborIndex indicates a neighbor index outside [0,deg(u)).
	ErrNeighborIndex = errors.New("core: neighbor index out of range")
)

// Edge is an undirected edge in canonical orientation U < V.
type Edge struct {
	U int
	V int
}

// Graph is a simple undirected graph over the nodes 0..n-1.
//
// mu guards adj, pos and m.
type Graph struct {
	mu sync.RWMutex

	// adj[u] lists the neighbors of u, unordered.
	adj [][]int
	// pos[u][v] is the slot of v in adj[u].
	pos []map[int]int
	// m is the number of edges.
	m int
}

// NewGraph creates an edgeless graph with n nodes (ids 0..n-1).
// A negative n is treated as zero.
// Complexity: O(n)
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		adj: make([][]int, n),
		pos: make([]map[int]int, n),
	}
	for u := 0; u < n; u++ {
		g.pos[u] = make(map[int]int)
	}

	return g
}

// FromEdges builds a graph with n nodes and the given edges.
// It fails on the first edge AddEdge would reject.
// Complexity: O(n + len(edges))
func FromEdges(n int, edges []Edge) (*Graph, error) {
	g := NewGraph(n)
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}

	return g, nil
}
