package gridgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
)

// maze is a 6×6 Conn4 maze with a single winding corridor system.
var maze = [][]int{
	{1, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 0},
	{1, 1, 1, 0, 1, 1},
	{1, 0, 1, 1, 1, 0},
	{1, 0, 0, 0, 1, 1},
	{1, 1, 1, 1, 1, 1},
}

func run(t *testing.T, p *gridgraph.Problem, alg search.Algorithm) *search.Result[gridgraph.Point] {
	t.Helper()
	s, err := search.New[gridgraph.Point](p, alg)
	require.NoError(t, err)
	res, err := s.Run()
	require.NoError(t, err)

	return res
}

func newGrid(t *testing.T, values [][]int, conn gridgraph.Connectivity, costs gridgraph.CostModel) *gridgraph.GridGraph {
	t.Helper()
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = conn
	opts.Costs = costs
	gg, err := gridgraph.NewGridGraph(values, opts)
	require.NoError(t, err)

	return gg
}

func TestProblem_Errors(t *testing.T) {
	gg := newGrid(t, maze, gridgraph.Conn4, gridgraph.UnitCost)

	_, err := gg.Problem(gridgraph.Point{X: -1, Y: 0}, gridgraph.Point{X: 5, Y: 5})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = gg.Problem(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 6, Y: 5})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = gg.Problem(gridgraph.Point{X: 0, Y: 1}, gridgraph.Point{X: 5, Y: 5})
	assert.ErrorIs(t, err, gridgraph.ErrBlocked)
	_, err = gg.Problem(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 5, Y: 5},
		gridgraph.WithHeuristic(gridgraph.Heuristic(99)))
	assert.ErrorIs(t, err, gridgraph.ErrBadOption)

	_, err = search.New[gridgraph.Point](&gridgraph.Problem{}, search.BFS)
	assert.ErrorIs(t, err, search.ErrMalformedProblem)
}

// A 5×5 maze whose middle row is a wall: start (0,0) and goal (4,4) are
// disconnected, and every algorithm closes exactly the start's component.
func TestBlockedRow_NoPath(t *testing.T) {
	grid := [][]int{
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	}
	start, goal := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 4, Y: 4}

	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		gg := newGrid(t, grid, conn, gridgraph.UnitCost)
		p, err := gg.Problem(start, goal)
		require.NoError(t, err)
		reachable := len(gg.ComponentOf(start))
		require.Equal(t, 10, reachable)

		for _, alg := range search.Algorithms() {
			res := run(t, p, alg)
			assert.False(t, res.Found, "%v conn=%d", alg, conn)
			assert.Empty(t, res.Path, "%v conn=%d", alg, conn)
			assert.Zero(t, res.Metrics.PathCost)
			assert.Equal(t, reachable, res.Metrics.NodesExplored, "%v conn=%d", alg, conn)
		}
	}
}

func TestMaze_OptimalityAcrossAlgorithms(t *testing.T) {
	gg := newGrid(t, maze, gridgraph.Conn4, gridgraph.UnitCost)
	start, goal := gridgraph.Point{X: 0, Y: 2}, gridgraph.Point{X: 0, Y: 5}

	p, err := gg.Problem(start, goal)
	require.NoError(t, err)

	bfs := run(t, p, search.BFS)
	ucs := run(t, p, search.UCS)
	require.True(t, bfs.Found)
	require.True(t, ucs.Found)
	assert.Equal(t, bfs.Metrics.PathLength, ucs.Metrics.PathLength)
	assert.Equal(t, float64(bfs.Metrics.PathLength-1), ucs.Metrics.PathCost)

	for _, h := range []gridgraph.Heuristic{gridgraph.Manhattan, gridgraph.Euclidean, gridgraph.Chebyshev} {
		ph, err := gg.Problem(start, goal, gridgraph.WithHeuristic(h))
		require.NoError(t, err)
		astar := run(t, ph, search.AStar)
		require.True(t, astar.Found, h.String())
		assert.Equal(t, ucs.Metrics.PathCost, astar.Metrics.PathCost, h.String())
		assert.LessOrEqual(t, astar.Metrics.NodesExplored, ucs.Metrics.NodesExplored, h.String())
	}

	for _, alg := range []search.Algorithm{search.DFS, search.Greedy} {
		res := run(t, p, alg)
		require.True(t, res.Found, alg.String())
		assert.NoError(t, search.ValidatePath[gridgraph.Point](p, res.Path), alg.String())
		assert.GreaterOrEqual(t, res.Metrics.PathCost, ucs.Metrics.PathCost, alg.String())
	}
}

func TestOpenGrid_Conn8Octile(t *testing.T) {
	open := make([][]int, 5)
	for y := range open {
		open[y] = []int{1, 1, 1, 1, 1}
	}
	gg := newGrid(t, open, gridgraph.Conn8, gridgraph.UnitCost)
	p, err := gg.Problem(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 4, Y: 4})
	require.NoError(t, err)

	astar := run(t, p, search.AStar)
	require.True(t, astar.Found)
	assert.InDelta(t, 4*math.Sqrt2, astar.Metrics.PathCost, 1e-9)
	assert.Equal(t, 5, astar.Metrics.PathLength)

	ucs := run(t, p, search.UCS)
	assert.InDelta(t, ucs.Metrics.PathCost, astar.Metrics.PathCost, 1e-9)
}

// TestTerrain_AvoidsExpensiveCells routes around a costly column.
//
//	1 9 1
//	1 9 1
//	1 1 1
func TestTerrain_AvoidsExpensiveCells(t *testing.T) {
	gg := newGrid(t, [][]int{{1, 9, 1}, {1, 9, 1}, {1, 1, 1}}, gridgraph.Conn4, gridgraph.TerrainCost)
	p, err := gg.Problem(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 2, Y: 0})
	require.NoError(t, err)

	for _, alg := range []search.Algorithm{search.UCS, search.AStar} {
		res := run(t, p, alg)
		require.True(t, res.Found, alg.String())
		assert.Equal(t, 6.0, res.Metrics.PathCost, alg.String())
		assert.Equal(t, 7, res.Metrics.PathLength, alg.String())
	}

	// BFS ignores prices and takes the 2-move line through the 9.
	bfs := run(t, p, search.BFS)
	assert.Equal(t, 3, bfs.Metrics.PathLength)
	assert.Equal(t, 10.0, bfs.Metrics.PathCost)
}

func TestTerrain_HeuristicScaledByCheapestCell(t *testing.T) {
	gg := newGrid(t, [][]int{{2, 3}, {4, 5}}, gridgraph.Conn4, gridgraph.TerrainCost)
	p, err := gg.Problem(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 4.0, p.Heuristic(gridgraph.Point{X: 0, Y: 0}))
}

func TestGridSearch_Deterministic(t *testing.T) {
	gg := newGrid(t, maze, gridgraph.Conn8, gridgraph.UnitCost)
	p, err := gg.Problem(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 0, Y: 5})
	require.NoError(t, err)

	for _, alg := range search.Algorithms() {
		first := run(t, p, alg)
		second := run(t, p, alg)
		assert.Equal(t, first.Path, second.Path, alg.String())
		assert.Equal(t, first.Metrics.NodesExplored, second.Metrics.NodesExplored, alg.String())
	}
}
