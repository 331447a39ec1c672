package runner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/runner"
	"github.com/katalvlaran/lvsearch/internal/telemetry"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/route"
	"github.com/katalvlaran/lvsearch/search"
)

const (
	threeMoves = `
kind: puzzle
puzzle:
  start: [[1, 2, 3], [0, 4, 6], [7, 5, 8]]
`
	unsolvable = `
kind: puzzle
algorithm: bfs
puzzle:
  start: [[2, 1], [3, 0]]
`
	blockedRow = `
kind: grid
grid:
  cells:
    - [1, 1, 1, 1, 1]
    - [1, 1, 1, 1, 1]
    - [0, 0, 0, 0, 0]
    - [1, 1, 1, 1, 1]
    - [1, 1, 1, 1, 1]
  start: [0, 0]
  goal: [4, 4]
`
	town = `
kind: graph
heuristic: straight-line
graph:
  vertices:
    - {id: S, x: 0, y: 0}
    - {id: A, x: 2, y: 0}
    - {id: B, x: 0, y: 3}
    - {id: C, x: 4, y: 3}
    - {id: G, x: 6, y: 0}
  edges:
    - {from: S, to: A, weight: 2}
    - {from: S, to: B, weight: 3}
    - {from: A, to: C, weight: 4}
    - {from: B, to: C, weight: 4}
    - {from: A, to: G, weight: 5}
    - {from: C, to: G, weight: 4}
  start: S
  goal: G
`
)

func build(t *testing.T, doc string) *runner.Instance {
	t.Helper()
	f, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	inst, err := runner.Build(f)
	require.NoError(t, err)

	return inst
}

func buildErr(t *testing.T, doc string) error {
	t.Helper()
	f, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	_, err = runner.Build(f)

	return err
}

func TestSolve_Puzzle(t *testing.T) {
	inst := build(t, threeMoves)
	assert.Empty(t, inst.Warnings)

	r, err := inst.Solve(runner.Env{}, inst.Resolve(runner.Settings{RunID: "r1"}, false))
	require.NoError(t, err)
	assert.Equal(t, "r1", r.RunID)
	assert.Equal(t, "puzzle", r.Kind)
	assert.Equal(t, "astar", r.Algorithm)
	assert.Equal(t, "goal-found", r.Status)
	assert.True(t, r.Found)
	assert.Equal(t, 4, r.PathLength)
	assert.Equal(t, 3.0, r.PathCost)
	require.Len(t, r.Path, 4)
	assert.Equal(t, "1 2 3/_ 4 6/7 5 8", r.Path[0])
	assert.Equal(t, "1 2 3/4 5 6/7 8 _", r.Path[3])
}

func TestSolve_UnsolvablePuzzleWarnsAndExhausts(t *testing.T) {
	inst := build(t, unsolvable)
	require.Len(t, inst.Warnings, 1)
	assert.Contains(t, inst.Warnings[0], "unsolvable")

	var logs bytes.Buffer
	inst.LogWarnings(slog.New(slog.NewTextHandler(&logs, nil)))
	assert.Contains(t, logs.String(), "level=WARN")

	r, err := inst.Solve(runner.Env{}, inst.Resolve(runner.Settings{}, false))
	require.NoError(t, err)
	assert.Equal(t, "bfs", r.Algorithm)
	assert.False(t, r.Found)
	assert.Empty(t, r.Path)
	assert.Equal(t, "exhausted", r.Status)
	assert.Equal(t, 12, r.NodesExplored)
}

func TestCompare_BlockedGridRecordsMetrics(t *testing.T) {
	inst := build(t, blockedRow)
	m := telemetry.New(prometheus.NewRegistry())

	reports, err := inst.Compare(runner.Env{Metrics: m}, runner.Settings{})
	require.NoError(t, err)
	require.Len(t, reports, len(search.Algorithms()))
	for i, r := range reports {
		assert.Equal(t, search.Algorithms()[i].String(), r.Algorithm)
		assert.False(t, r.Found, r.Algorithm)
		assert.Equal(t, 10, r.NodesExplored, r.Algorithm)
		assert.Equal(t, 1.0, testutil.ToFloat64(
			m.RunsTotal.WithLabelValues("grid", r.Algorithm, telemetry.OutcomeExhausted)), r.Algorithm)
	}
}

func TestCompare_ParallelMatchesSerial(t *testing.T) {
	inst := build(t, town)
	serial, err := inst.Compare(runner.Env{}, runner.Settings{})
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m := telemetry.New(reg)
	parallel, err := inst.Compare(runner.Env{Metrics: m}, runner.Settings{Workers: 3})
	require.NoError(t, err)
	require.Len(t, parallel, len(serial))
	for i := range serial {
		assert.Equal(t, serial[i].Algorithm, parallel[i].Algorithm)
		assert.Equal(t, serial[i].Path, parallel[i].Path, serial[i].Algorithm)
		assert.Equal(t, serial[i].NodesExplored, parallel[i].NodesExplored, serial[i].Algorithm)
	}
	assert.Equal(t, len(serial), testutil.CollectAndCount(m.RunsTotal))
}

func TestSolve_GraphDefaultsToAStar(t *testing.T) {
	inst := build(t, town)
	assert.Empty(t, inst.Warnings)

	s := inst.Resolve(runner.Settings{}, false)
	assert.Equal(t, search.AStar, s.Algorithm)
	r, err := inst.Solve(runner.Env{}, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "G"}, r.Path)
	assert.Equal(t, 7.0, r.PathCost)
	assert.Equal(t, 2, r.NodesExplored)
}

func TestResolve(t *testing.T) {
	inst := build(t, "kind: puzzle\nalgorithm: ucs\nmax_expansions: 50\npuzzle: {start: [[1, 0], [3, 2]]}\n")

	s := inst.Resolve(runner.Settings{}, false)
	assert.Equal(t, search.UCS, s.Algorithm)
	assert.Equal(t, 50, s.MaxExpansions)

	s = inst.Resolve(runner.Settings{Algorithm: search.BFS, MaxExpansions: 7}, true)
	assert.Equal(t, search.BFS, s.Algorithm)
	assert.Equal(t, 7, s.MaxExpansions)
}

func TestSolve_ExpansionLimit(t *testing.T) {
	inst := build(t, town)
	m := telemetry.New(prometheus.NewRegistry())

	r, err := inst.Solve(runner.Env{Metrics: m}, runner.Settings{Algorithm: search.UCS, MaxExpansions: 1})
	require.ErrorIs(t, err, search.ErrExpansionLimit)
	require.NotNil(t, r)
	assert.Equal(t, "aborted", r.Status)
	assert.False(t, r.Found)
	assert.NotEmpty(t, r.Error)
	assert.Equal(t, runner.Outcome(false, err), telemetry.OutcomeLimit)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("graph", "ucs", telemetry.OutcomeLimit)))
}

func TestCompare_StopsWhenCancelled(t *testing.T) {
	inst := build(t, blockedRow)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := inst.Compare(runner.Env{Context: ctx}, runner.Settings{})
	require.ErrorIs(t, err, search.ErrCancelled)
	require.Len(t, reports, 1)
	assert.Equal(t, "aborted", reports[0].Status)
}

func TestTrace_Graph(t *testing.T) {
	inst := build(t, town)

	var snaps []runner.Snapshot
	r, err := inst.Trace(runner.Env{}, runner.Settings{Algorithm: search.AStar}, 0, func(s runner.Snapshot) error {
		snaps = append(snaps, s)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, snaps, 3)
	assert.Equal(t, []string{"S", "A", "G"}, []string{snaps[0].Expanded, snaps[1].Expanded, snaps[2].Expanded})
	assert.Equal(t, 1, snaps[0].Step)
	assert.Equal(t, 1, snaps[0].Closed)
	assert.Equal(t, []string{"A", "B"}, snaps[0].Frontier)
	assert.Equal(t, "running", snaps[0].Status)
	assert.Equal(t, "goal-found", snaps[2].Status)
	assert.True(t, r.Found)
	assert.Equal(t, []string{"S", "A", "G"}, r.Path)
}

func TestTrace_MaxStepsLeavesRunIncomplete(t *testing.T) {
	inst := build(t, town)

	var n int
	r, err := inst.Trace(runner.Env{}, runner.Settings{Algorithm: search.UCS}, 1, func(runner.Snapshot) error {
		n++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "running", r.Status)
	assert.False(t, r.Found)
	assert.Equal(t, 1, r.NodesExplored)
}

func TestTrace_EmitErrorStops(t *testing.T) {
	inst := build(t, threeMoves)
	stop := errors.New("enough")

	r, err := inst.Trace(runner.Env{}, runner.Settings{Algorithm: search.BFS}, 0, func(runner.Snapshot) error {
		return stop
	})
	require.ErrorIs(t, err, stop)
	require.NotNil(t, r)
	assert.Equal(t, "enough", r.Error)
}

func TestBuild_Errors(t *testing.T) {
	assert.ErrorIs(t, buildErr(t, "kind: puzzle\npuzzle: {start: [[1, 1], [2, 0]]}\n"), puzzle.ErrNotPermutation)
	assert.ErrorIs(t, buildErr(t, "kind: puzzle\npuzzle: {start: [[1, 0], [2, 3]], goal: [[1, 2, 3], [4, 5, 6], [7, 8, 0]]}\n"),
		puzzle.ErrSideMismatch)
	assert.ErrorIs(t, buildErr(t, "kind: puzzle\nheuristic: linear\npuzzle: {start: [[1, 0], [2, 3]]}\n"),
		puzzle.ErrUnknownHeuristic)
	assert.ErrorIs(t, buildErr(t, "kind: grid\ngrid: {cells: [[0, 1]], start: [0, 0], goal: [1, 0]}\n"), gridgraph.ErrBlocked)
	assert.ErrorIs(t, buildErr(t, "kind: grid\ngrid: {cells: [[1, 1]], start: [0, 0], goal: [5, 0]}\n"), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, buildErr(t, "kind: grid\nheuristic: taxicab\ngrid: {cells: [[1, 1]], start: [0, 0], goal: [1, 0]}\n"),
		gridgraph.ErrBadOption)
	assert.ErrorIs(t, buildErr(t, "kind: graph\ngraph: {start: a, goal: b, edges: [{from: a, to: b, weight: -2}]}\n"),
		route.ErrNegativeWeight)
	assert.ErrorIs(t, buildErr(t, "kind: graph\nheuristic: straight-line\ngraph: {start: a, goal: b, edges: [{from: a, to: b, weight: 1}]}\n"),
		route.ErrMissingPosition)
	assert.Error(t, buildErr(t, "kind: graph\nheuristic: crow\ngraph: {start: a, goal: b, edges: [{from: a, to: b, weight: 1}]}\n"))

	_, err := runner.Build(&config.File{Kind: "maze"})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestBuild_Warnings(t *testing.T) {
	grid := build(t, "kind: grid\nheuristic: manhattan\ngrid: {conn: 8, cells: [[1, 1], [1, 1]], start: [0, 0], goal: [1, 1]}\n")
	require.Len(t, grid.Warnings, 1)
	assert.Contains(t, grid.Warnings[0], "8-connected")

	graph := build(t, `
kind: graph
heuristic: euclidean
graph:
  vertices: [{id: a, x: 0, y: 0}, {id: b, x: 10, y: 0}]
  edges: [{from: a, to: b, weight: 1}]
  start: a
  goal: b
`)
	require.Len(t, graph.Warnings, 1)
	assert.Contains(t, graph.Warnings[0], "straight line")
	assert.Contains(t, graph.Warnings[0], `estimate at "a"`)

	exact := build(t, strings.Replace(town, "straight-line", "exact", 1))
	assert.Empty(t, exact.Warnings)
	r, err := exact.Solve(runner.Env{}, exact.Resolve(runner.Settings{}, false))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "G"}, r.Path)
	assert.Equal(t, 2, r.NodesExplored)
}

func TestSolve_LogsRunID(t *testing.T) {
	inst := build(t, threeMoves)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	_, err := inst.Solve(runner.Env{Logger: logger}, runner.Settings{Algorithm: search.UCS, RunID: "abc-123"})
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "run finished", rec["msg"])
	assert.Equal(t, "abc-123", rec["run_id"])
	assert.Equal(t, "found", rec["outcome"])
	assert.Equal(t, 3.0, rec["path_cost"])
}
