// Package gridgraph defines core types and options for grid pathfinding.
package gridgraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a cell coordinate: X is the column, Y the row. It is the search
// state of every grid problem.
type Point struct {
	X, Y int
}

// String formats p as "x,y", the vertex ID used by ToGraph.
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// CostModel selects how a move is priced.
type CostModel int

const (
	// UnitCost charges 1 per orthogonal move and √2 per diagonal move.
	UnitCost CostModel = iota
	// TerrainCost multiplies the unit price by the destination cell value.
	TerrainCost
)

// Heuristic selects the distance estimate used by grid problems.
type Heuristic int

const (
	// Zero estimates nothing.
	Zero Heuristic = iota
	// Manhattan is |dx|+|dy|. Admissible for Conn4 only.
	Manhattan
	// Euclidean is the straight-line distance. Admissible for both connectivities.
	Euclidean
	// Octile is max(dx,dy)+(√2−1)·min(dx,dy), exact on an open Conn8 grid.
	Octile
	// Chebyshev is max(dx,dy). Admissible for both connectivities.
	Chebyshev
)

var heuristicNames = [...]string{
	Zero:      "zero",
	Manhattan: "manhattan",
	Euclidean: "euclidean",
	Octile:    "octile",
	Chebyshev: "chebyshev",
}

// String returns the heuristic name.
func (h Heuristic) String() string {
	if h < 0 || int(h) >= len(heuristicNames) {
		return fmt.Sprintf("heuristic(%d)", int(h))
	}

	return heuristicNames[h]
}

// ParseHeuristic maps a case-insensitive name to a Heuristic.
// The empty string selects Zero.
func ParseHeuristic(name string) (Heuristic, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == "none" {
		return Zero, nil
	}
	for i, s := range heuristicNames {
		if s == n {
			return Heuristic(i), nil
		}
	}

	return 0, fmt.Errorf("%w: heuristic %q", ErrBadOption, name)
}

// Distance returns the h-distance between a and b in cell units.
func Distance(h Heuristic, a, b Point) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	switch h {
	case Manhattan:
		return dx + dy
	case Euclidean:
		return math.Hypot(dx, dy)
	case Octile:
		return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
	case Chebyshev:
		return math.Max(dx, dy)
	default:
		return 0
	}
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered passable "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Costs chooses unit or terrain move prices.
	Costs CostModel
	// NoCornerCutting forbids a diagonal move unless both orthogonal cells
	// it passes between are passable.
	NoCornerCutting bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4, Costs=UnitCost.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
		Costs:         UnitCost,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// Options are fixed at construction.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	GridOptions

	// offsets is precomputed from Conn for adjacency lookups.
	offsets [][2]int
	// minStep is the cheapest price per unit of distance over passable cells.
	minStep float64
}
