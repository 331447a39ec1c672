package builder

import "fmt"

const (
	methodMaze       = "Maze"
	methodRandomGrid = "RandomGrid"
	minGridDim       = 1
)

// Maze returns a width×height perfect maze as grid cell values (1 open,
// 0 wall). Rooms sit on even coordinates and are carved by randomized
// depth-first search from (0,0), so every room is reachable by exactly one
// path. Odd-sized dimensions leave no dead border. Requires WithSeed or
// WithRand.
func Maze(width, height int, opts ...BuilderOption) ([][]int, error) {
	cfg := newBuilderConfig(opts...)
	if width < minGridDim || height < minGridDim {
		return nil, fmt.Errorf("%s: %dx%d (each must be ≥ %d): %w",
			methodMaze, width, height, minGridDim, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodMaze, ErrNeedRandSource)
	}

	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}
	type room struct{ x, y int }
	steps := [...]room{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

	cells[0][0] = 1
	stack := []room{{0, 0}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		var open []room
		for _, s := range steps {
			nx, ny := cur.x+s.x, cur.y+s.y
			if nx >= 0 && nx < width && ny >= 0 && ny < height && cells[ny][nx] == 0 {
				open = append(open, room{nx, ny})
			}
		}
		if len(open) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := open[cfg.rng.Intn(len(open))]
		cells[(cur.y+next.y)/2][(cur.x+next.x)/2] = 1
		cells[next.y][next.x] = 1
		stack = append(stack, next)
	}

	return cells, nil
}

// RandomGrid returns a width×height grid where each cell is a wall (0)
// with probability pBlocked and open otherwise. Open cells are 1, or a
// uniform cost in [1, k] with WithMaxCost(k). The corners (0,0) and
// (width-1,height-1) are always open; they may still be disconnected.
// Requires WithSeed or WithRand.
func RandomGrid(width, height int, pBlocked float64, opts ...BuilderOption) ([][]int, error) {
	cfg := newBuilderConfig(opts...)
	if width < minGridDim || height < minGridDim {
		return nil, fmt.Errorf("%s: %dx%d (each must be ≥ %d): %w",
			methodRandomGrid, width, height, minGridDim, ErrTooFewVertices)
	}
	if pBlocked < 0 || pBlocked > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomGrid, pBlocked, ErrInvalidProbability)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomGrid, ErrNeedRandSource)
	}

	open := func() int {
		if cfg.maxCost == 1 {
			return 1
		}
		return 1 + cfg.rng.Intn(cfg.maxCost)
	}
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
		for x := range cells[y] {
			if cfg.rng.Float64() >= pBlocked {
				cells[y][x] = open()
			}
		}
	}
	if cells[0][0] == 0 {
		cells[0][0] = open()
	}
	if cells[height-1][width-1] == 0 {
		cells[height-1][width-1] = open()
	}

	return cells, nil
}
