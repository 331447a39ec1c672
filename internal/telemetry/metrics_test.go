package telemetry

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()

	return New(reg), reg
}

func TestObserveRun_Found(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.ObserveRun(Run{Kind: "grid", Algorithm: "astar", Outcome: OutcomeFound, Explored: 12, PathCost: 6, Elapsed: time.Millisecond})
	m.ObserveRun(Run{Kind: "grid", Algorithm: "astar", Outcome: OutcomeFound, Explored: 3, PathCost: 2, Elapsed: time.Millisecond})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("grid", "astar", OutcomeFound)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.NodesExplored))
	assert.Equal(t, 1, testutil.CollectAndCount(m.PathCost))
}

func TestObserveRun_NotFoundSkipsPathCost(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.ObserveRun(Run{Kind: "puzzle", Algorithm: "bfs", Outcome: OutcomeExhausted, Explored: 181440})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("puzzle", "bfs", OutcomeExhausted)))
	assert.Zero(t, testutil.ToFloat64(m.RunsTotal.WithLabelValues("puzzle", "bfs", OutcomeFound)))
	assert.Equal(t, 0, testutil.CollectAndCount(m.PathCost))
	assert.Equal(t, 1, testutil.CollectAndCount(m.DurationSeconds))
}

func TestObserveRun_NilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveRun(Run{Outcome: OutcomeError}) })
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	_, reg := newTestMetrics(t)
	assert.Panics(t, func() { New(reg) })
}

func TestWriteText(t *testing.T) {
	m, reg := newTestMetrics(t)
	m.ObserveRun(Run{Kind: "graph", Algorithm: "ucs", Outcome: OutcomeFound, Explored: 4, PathCost: 7})

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, "# TYPE lvsearch_search_runs_total counter")
	assert.Contains(t, out, `lvsearch_search_runs_total{algorithm="ucs",kind="graph",outcome="found"} 1`)
	assert.Contains(t, out, "lvsearch_search_path_cost_sum")
	assert.Contains(t, out, `lvsearch_search_nodes_explored_count{algorithm="ucs",kind="graph"} 1`)
}
