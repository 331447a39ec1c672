// Package core provides a thread-safe, in-memory weighted Graph with
// optional planar vertex coordinates, used as the explicit state space for
// route search and as the export format of gridgraph.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - float64 weights; NaN and ±Inf are rejected, negative values are stored
//   - Vertex coordinates (SetPosition/Position) for straight-line heuristics
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices() and NeighborIDs() return sorted IDs. Edges() and Neighbors()
//	return edges in insertion order, so a search over the same Graph
//	generates successors in the same order every run.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                      // O(1)
//	HasVertex(id string) bool                       // O(1)
//	SetPosition(id string, x, y float64) error      // O(1)
//	Position(id string) (x, y float64, ok bool)     // O(1)
//	Vertices() []string                             // O(V log V)
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) (string, error) // O(1)
//	HasEdge(from, to string) bool                       // O(1)
//	GetEdge(id string) (*Edge, error)                   // O(1)
//	Edges() []*Edge                                     // O(E log E)
//
//	// Neighborhood
//	Neighbors(id string) ([]*Edge, error)    // O(d log d)
//	NeighborIDs(id string) ([]string, error) // O(d log d)
//
//	// Summary
//	Stats() GraphStats // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed. All are wrapped with context
//	and compared with errors.Is.
package core
