package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
	// ErrBadOption indicates an unknown Connectivity, CostModel or Heuristic.
	ErrBadOption = errors.New("gridgraph: invalid option")
	// ErrNegativeTerrain indicates a passable cell with a negative value under TerrainCost.
	ErrNegativeTerrain = errors.New("gridgraph: terrain cost must be non-negative")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrBlocked indicates a start or goal on an impassable cell.
	ErrBlocked = errors.New("gridgraph: point is not passable")
)
