// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a search space. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8), optional corner-cutting ban
//   - Unit or terrain move costs
//   - Successor generation for the search engine
//   - Conversion to a *core.Graph
//   - Identification of connected components of passable cells
//   - Minimum-conversion expansions between components
//
// Cells with value < LandThreshold are obstacles ("water"); cells with value ≥ LandThreshold are passable ("land").
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadOption for an unknown
// Conn or Costs, and ErrNegativeTerrain if TerrainCost meets a passable
// negative cell.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	var offsets [][2]int
	switch opts.Conn {
	case Conn4:
		offsets = offsets4
	case Conn8:
		offsets = offsets8
	default:
		return nil, fmt.Errorf("%w: connectivity %d", ErrBadOption, opts.Conn)
	}

	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	minStep := 1.0
	switch opts.Costs {
	case UnitCost:
	case TerrainCost:
		minStep = math.Inf(1)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := cells[y][x]
				if v < opts.LandThreshold {
					continue
				}
				if v < 0 {
					return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrNegativeTerrain, v, x, y)
				}
				minStep = math.Min(minStep, float64(v))
			}
		}
		if math.IsInf(minStep, 1) {
			minStep = 0
		}
	default:
		return nil, fmt.Errorf("%w: cost model %d", ErrBadOption, opts.Costs)
	}

	gg := &GridGraph{
		Width:       w,
		Height:      h,
		CellValues:  cells,
		GridOptions: opts,
		offsets:     offsets,
		minStep:     minStep,
	}

	return gg, nil
}

// From2D builds a GridGraph with DefaultGridOptions and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether p is in bounds and not an obstacle.
func (gg *GridGraph) Passable(p Point) bool {
	return gg.InBounds(p.X, p.Y) && gg.CellValues[p.Y][p.X] >= gg.LandThreshold
}

// Value returns the original cell value at p. p must be in bounds.
func (gg *GridGraph) Value(p Point) int {
	return gg.CellValues[p.Y][p.X]
}

// NeighborOffsets returns the precomputed (dx,dy) offsets in generation order.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// Neighbors returns the passable cells one move from p with their move cost,
// in N, (NE,) E, (SE,) S, (SW,) W, (NW) order.
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Neighbors(p Point) []search.Successor[Point] {
	out := make([]search.Successor[Point], 0, len(gg.offsets))
	for _, d := range gg.offsets {
		q := Point{p.X + d[0], p.Y + d[1]}
		if !gg.Passable(q) {
			continue
		}
		diagonal := d[0] != 0 && d[1] != 0
		if diagonal && gg.NoCornerCutting &&
			(!gg.Passable(Point{p.X + d[0], p.Y}) || !gg.Passable(Point{p.X, p.Y + d[1]})) {
			continue
		}
		out = append(out, search.Successor[Point]{State: q, Cost: gg.stepCost(q, diagonal)})
	}

	return out
}

// stepCost prices a move into q.
func (gg *GridGraph) stepCost(q Point, diagonal bool) float64 {
	c := 1.0
	if diagonal {
		c = math.Sqrt2
	}
	if gg.Costs == TerrainCost {
		c *= float64(gg.Value(q))
	}

	return c
}

// ToGraph converts the passable cells into a weighted *core.Graph.
// Each cell at (x,y) becomes a vertex with ID "x,y" and position (x,y).
// Edges carry the move cost of Neighbors. Under UnitCost the graph is
// undirected with one edge per adjacent pair; under TerrainCost prices
// depend on the destination, so the graph is directed.
// Complexity: O(W×H×d), Memory: O(W×H + E).
func (gg *GridGraph) ToGraph() *core.Graph {
	directed := gg.Costs == TerrainCost
	g := core.NewGraph(core.WithDirected(directed))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{x, y}
			if !gg.Passable(p) {
				continue
			}
			id := p.String()
			_ = g.AddVertex(id)
			_ = g.SetPosition(id, float64(x), float64(y))
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{x, y}
			if !gg.Passable(p) {
				continue
			}
			for _, s := range gg.Neighbors(p) {
				if !directed && gg.index(s.State) < gg.index(p) {
					continue // added from the other endpoint
				}
				_, _ = g.AddEdge(p.String(), s.State.String(), s.Cost)
			}
		}
	}

	return g
}

// index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(p Point) int {
	return p.Y*gg.Width + p.X
}

// point converts a row-major index back to a Point.
// Complexity: O(1).
func (gg *GridGraph) point(idx int) Point {
	return Point{idx % gg.Width, idx / gg.Width}
}
