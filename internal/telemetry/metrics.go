// Package telemetry records Prometheus metrics for search runs.
//
// Metrics are registered on an injected Registerer so tests and the CLI
// can use private registries. All recording methods are safe for
// concurrent use and no-ops on a nil *Metrics.
package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const (
	metricsNamespace = "lvsearch"
	searchSubsystem  = "search"
)

// Outcome labels.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeLimit     = "limit"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Metrics holds the per-run instruments.
type Metrics struct {
	// RunsTotal counts finished runs.
	// Labels: kind (puzzle, grid, graph), algorithm, outcome
	RunsTotal *prometheus.CounterVec

	// NodesExplored observes the closed-set size at the end of a run.
	// Labels: kind, algorithm
	NodesExplored *prometheus.HistogramVec

	// DurationSeconds observes search wall time.
	// Labels: kind, algorithm
	DurationSeconds *prometheus.HistogramVec

	// PathCost observes the cost of found paths only.
	// Labels: kind, algorithm
	PathCost *prometheus.HistogramVec
}

// New creates and registers the instruments on reg.
// It panics if they are already registered there.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "runs_total",
				Help:      "Total number of search runs by problem kind, algorithm and outcome",
			},
			[]string{"kind", "algorithm", "outcome"},
		),
		NodesExplored: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "nodes_explored",
				Help:      "States expanded per run",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
			},
			[]string{"kind", "algorithm"},
		),
		DurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "duration_seconds",
				Help:      "Search wall time in seconds",
				Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"kind", "algorithm"},
		),
		PathCost: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "path_cost",
				Help:      "Cost of the returned path for runs that found a goal",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"kind", "algorithm"},
		),
	}
}

// Run is the summary of one finished search.
type Run struct {
	Kind      string
	Algorithm string
	Outcome   string
	Explored  int
	PathCost  float64
	Elapsed   time.Duration
}

// ObserveRun records one finished search.
func (m *Metrics) ObserveRun(r Run) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(r.Kind, r.Algorithm, r.Outcome).Inc()
	m.NodesExplored.WithLabelValues(r.Kind, r.Algorithm).Observe(float64(r.Explored))
	m.DurationSeconds.WithLabelValues(r.Kind, r.Algorithm).Observe(r.Elapsed.Seconds())
	if r.Outcome == OutcomeFound {
		m.PathCost.WithLabelValues(r.Kind, r.Algorithm).Observe(r.PathCost)
	}
}

// WriteText writes every family gathered from g in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("telemetry: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
