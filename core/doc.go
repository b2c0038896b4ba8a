// Package core provides the mutable simple graph consumed by the randomization
// chain: an undirected graph G = (V,E) over dense integer node ids 0..n-1
// without self-loops or parallel edges.
//
// The representation is tuned for the operations a switching chain performs in
// its hot loop:
//
//   - adj[u] holds the neighbors of u in insertion order (unsorted).
//   - pos[u][v] holds the slot of v inside adj[u].
//
// This gives constant-time edge queries, constant-time access to the i-th
// neighbor, and constant-time removal (swap with the last slot). An edge switch
// rewrites four slots in place, so neighbor slots of untouched pairs stay put.
//
// Core Methods:
//
//	NewGraph(n int) *Graph                        // O(n)
//	NumberOfNodes() int / NumberOfEdges() int    // O(1)
//	Degree(u int) int                            // O(1)
//	HasEdge(u, v int) bool                       // O(1)
//	IthNeighbor(u, i int) (int, error)           // O(1)
//	AddEdge(u, v int) error                      // O(1) amortized
//	RemoveEdge(u, v int) error                   // O(1)
//	SwapEdge(s1, t1, s2, t2 int) error           // O(1)
//	ForEdges(fn func(u, v int))                  // O(n+m)
//	Edges() []Edge                               // O(m log m)
//	Clone() *Graph                               // O(n+m)
//
// Concurrency:
//
// All methods take a sync.RWMutex (read lock for queries, write lock for
// mutations), so a Graph may be shared across goroutines. ForEdges holds the
// read lock for the duration of the callback; the callback must not mutate g.
//
// Errors:
//
//	ErrVertexNotFound      - node id outside [0,n).
//	ErrEdgeNotFound        - removal or swap of a missing edge.
//	ErrLoopNotAllowed      - an edge would connect a node to itself.
//	ErrMultiEdgeNotAllowed - an edge would duplicate an existing one.
//	ErrNeighborIndex       - IthNeighbor index outside [0,deg(u)).
package core
