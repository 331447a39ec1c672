package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/route"
	"github.com/katalvlaran/lvsearch/search"
)

func TestScramble_Errors(t *testing.T) {
	_, err := builder.Scramble(5, 3, builder.WithSeed(1))
	assert.ErrorIs(t, err, puzzle.ErrBadSide)
	_, err = builder.Scramble(3, -1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.Scramble(3, 4)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	b, err := builder.Scramble(3, 0)
	require.NoError(t, err)
	goal, _ := puzzle.Goal(3)
	assert.Equal(t, goal, b)
}

func TestScramble_Deterministic(t *testing.T) {
	a, err := builder.Scramble(4, 30, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.Scramble(4, 30, builder.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// An optimal solution is never longer than the walk and has the same parity.
func TestScramble_SolvableWithinMoves(t *testing.T) {
	const moves = 12
	goal, _ := puzzle.Goal(3)
	for seed := int64(1); seed <= 5; seed++ {
		b, err := builder.Scramble(3, moves, builder.WithSeed(seed))
		require.NoError(t, err)
		require.True(t, puzzle.Solvable(b, goal), "seed %d", seed)

		p, err := puzzle.NewProblem(b, goal)
		require.NoError(t, err)
		s, err := search.New[puzzle.Board](p, search.AStar)
		require.NoError(t, err)
		res, err := s.Run()
		require.NoError(t, err)
		require.True(t, res.Found)
		cost := int(res.Metrics.PathCost)
		assert.LessOrEqual(t, cost, moves, "seed %d", seed)
		assert.Zero(t, (moves-cost)%2, "seed %d", seed)
	}
}

func TestMaze_PerfectMaze(t *testing.T) {
	const w, h = 7, 5
	cells, err := builder.Maze(w, h, builder.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, cells, h)

	open, rooms := 0, 0
	for y, row := range cells {
		require.Len(t, row, w)
		for x, v := range row {
			if x%2 == 0 && y%2 == 0 {
				rooms++
				assert.Equal(t, 1, v, "room (%d,%d) must be open", x, y)
			}
			if x%2 == 1 && y%2 == 1 {
				assert.Zero(t, v, "pillar (%d,%d) must be a wall", x, y)
			}
			open += v
		}
	}
	// A spanning tree over the rooms adds exactly rooms-1 corridors.
	assert.Equal(t, 2*rooms-1, open)

	gg, err := gridgraph.From2D(cells, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Len(t, gg.ConnectedComponents(), 1)

	again, _ := builder.Maze(w, h, builder.WithSeed(3))
	assert.Equal(t, cells, again)
}

func TestMaze_Errors(t *testing.T) {
	_, err := builder.Maze(0, 3, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Maze(3, 3)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomGrid(t *testing.T) {
	all, err := builder.RandomGrid(4, 3, 0, builder.WithSeed(1))
	require.NoError(t, err)
	for _, row := range all {
		assert.Equal(t, []int{1, 1, 1, 1}, row)
	}

	walls, err := builder.RandomGrid(4, 3, 1, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 1}}, walls)

	terrain, err := builder.RandomGrid(10, 10, 0.2, builder.WithSeed(9), builder.WithMaxCost(5))
	require.NoError(t, err)
	for _, row := range terrain {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 5)
		}
	}

	_, err = builder.RandomGrid(2, 2, 1.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.RandomGrid(2, 0, 0.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.RandomGrid(2, 2, 0.5)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestLattice(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Lattice(2, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 7, g.EdgeCount())
	x, y, ok := g.Position("F")
	require.True(t, ok)
	assert.Equal(t, [2]float64{4, 2}, [2]float64{x, y})

	p, err := route.NewProblem(g, "A", "F", route.WithStraightLine())
	require.NoError(t, err)
	assert.True(t, p.Consistent())
	s, err := search.New[string](p, search.AStar)
	require.NoError(t, err)
	res, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Metrics.PathCost)

	directed, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Lattice(1, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, directed.EdgeCount())

	_, err = builder.BuildGraph(nil, nil, builder.Lattice(0, 2, 1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.Lattice(2, 2, 0))
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestRandomGeometric(t *testing.T) {
	const radius = 30
	opts := []builder.BuilderOption{builder.WithSeed(5), builder.WithDetour(1.8), builder.WithSymbNumb("v")}
	g, err := builder.BuildGraph(nil, opts, builder.RandomGeometric(25, radius))
	require.NoError(t, err)
	assert.Equal(t, 25, g.VertexCount())
	assert.True(t, g.HasVertex("v24"))

	for _, e := range g.Edges() {
		fx, fy, _ := g.Position(e.From)
		tx, ty, _ := g.Position(e.To)
		d := math.Hypot(fx-tx, fy-ty)
		assert.LessOrEqual(t, d, float64(radius))
		assert.GreaterOrEqual(t, e.Weight, d)
		assert.LessOrEqual(t, e.Weight, 1.8*d+1e-3)
	}

	p, err := route.NewProblem(g, "v0", "v1", route.WithStraightLine())
	require.NoError(t, err)
	assert.True(t, p.Consistent())

	again, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithDetour(1.8), builder.WithSymbNumb("v")},
		builder.RandomGeometric(25, radius))
	require.NoError(t, err)
	require.Equal(t, g.EdgeCount(), again.EdgeCount())
	for i, e := range g.Edges() {
		assert.Equal(t, e.Weight, again.Edges()[i].Weight)
	}
}

func TestRandomGeometric_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomGeometric(1, 10))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomGeometric(5, -1))
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.BuildGraph(nil, nil, builder.RandomGeometric(5, 10))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithDetour(0.5) })
	assert.Panics(t, func() { builder.WithMaxCost(0) })
}

func TestExcelColumnIDFn(t *testing.T) {
	for idx, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, want, builder.ExcelColumnIDFn(idx))
	}
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Equal(t, "7", builder.DefaultIDFn(7))
}
