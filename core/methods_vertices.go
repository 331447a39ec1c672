// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/SetPosition/Position/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs sorted lex asc.
// Concurrency:
//   - Mutations under muVert write lock; adjacency bootstrap under muEdgeAdj.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex inserts a vertex with the given id. Adding an existing id is a
// no-op and keeps its position.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// SetPosition records planar coordinates for an existing vertex.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//   - ErrBadWeight: if a coordinate is NaN or infinite.
func (g *Graph) SetPosition(id string, x, y float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if !finite(x) || !finite(y) {
		return fmt.Errorf("%w: position (%v,%v) of %q", ErrBadWeight, x, y, id)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	v.X, v.Y, v.HasPosition = x, y, true

	return nil
}

// Position returns the coordinates of id. ok is false when the vertex is
// missing or has no position.
func (g *Graph) Position(id string) (x, y float64, ok bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, exists := g.vertices[id]
	if !exists || !v.HasPosition {
		return 0, 0, false
	}

	return v.X, v.Y, true
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
