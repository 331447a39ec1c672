// File: api.go
// Role: Read-only getters over construction flags and a graph-wide Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after NewGraph; getters still lock for a consistent view.

package core

// Directed reports whether edges are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount     int
	EdgeCount       int
	PositionedCount int     // vertices with coordinates
	NegativeEdges   int     // edges with Weight < 0
	MinWeight       float64 // 0 when the graph has no edges
	MaxWeight       float64 // 0 when the graph has no edges
}

// Stats returns a snapshot of vertex and edge counts and the weight range.
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	st := GraphStats{VertexCount: len(g.vertices), EdgeCount: len(g.edges)}
	for _, v := range g.vertices {
		if v.HasPosition {
			st.PositionedCount++
		}
	}
	first := true
	for _, e := range g.edges {
		if e.Weight < 0 {
			st.NegativeEdges++
		}
		if first || e.Weight < st.MinWeight {
			st.MinWeight = e.Weight
		}
		if first || e.Weight > st.MaxWeight {
			st.MaxWeight = e.Weight
		}
		first = false
	}

	return st
}
