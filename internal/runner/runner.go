// Package runner executes search problems described by config files and
// turns the outcome into printable reports.
//
// An Instance hides the state type of its problem: puzzle boards, grid
// points and graph vertex IDs are all rendered to strings at the report
// boundary, so callers can solve, trace and compare without generics.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/internal/telemetry"
	"github.com/katalvlaran/lvsearch/search"
)

// OutcomeIncomplete labels a trace stopped before a terminal status.
const OutcomeIncomplete = "incomplete"

// DefaultAlgorithm is used when neither the file nor the caller picks one.
const DefaultAlgorithm = search.AStar

// Settings controls a single run.
type Settings struct {
	// Algorithm to run. The zero value is BFS; see Instance.Resolve.
	Algorithm search.Algorithm

	// MaxExpansions, if > 0, aborts the run after that many expansions.
	MaxExpansions int

	// RunID tags log records and reports.
	RunID string

	// Workers bounds how many algorithms Compare runs at once. Values
	// below 2 run them in turn.
	Workers int
}

// Env carries the ambient collaborators of a run.
type Env struct {
	Context context.Context
	Logger  *slog.Logger
	Metrics *telemetry.Metrics
}

func (e Env) ctx() context.Context {
	if e.Context == nil {
		return context.Background()
	}
	return e.Context
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// Report is the printable outcome of one run.
type Report struct {
	RunID         string        `json:"run_id,omitempty"`
	Kind          string        `json:"kind"`
	Algorithm     string        `json:"algorithm"`
	Status        string        `json:"status"`
	Found         bool          `json:"found"`
	Path          []string      `json:"path"`
	PathLength    int           `json:"path_length"`
	PathCost      float64       `json:"path_cost"`
	NodesExplored int           `json:"nodes_explored"`
	Pushed        int           `json:"pushed"`
	StalePops     int           `json:"stale_pops"`
	MaxFrontier   int           `json:"max_frontier"`
	Elapsed       time.Duration `json:"elapsed_ns"`
	Error         string        `json:"error,omitempty"`
}

// Snapshot is one traced step.
type Snapshot struct {
	Step     int      `json:"step"`
	Expanded string   `json:"expanded"`
	Frontier []string `json:"frontier"`
	Closed   int      `json:"closed"`
	Stale    int      `json:"stale"`
	Status   string   `json:"status"`
}

// binding is implemented by adapter for each state type.
type binding interface {
	solve(env Env, kind string, s Settings) (*Report, error)
	trace(env Env, kind string, s Settings, maxSteps int, emit func(Snapshot) error) (*Report, error)
}

type adapter[S comparable] struct {
	problem search.Problem[S]
	render  func(S) string
}

// Resolve fills s from the file defaults. algorithmSet reports whether
// the caller chose s.Algorithm explicitly; otherwise the file's algorithm
// or DefaultAlgorithm is used.
func (inst *Instance) Resolve(s Settings, algorithmSet bool) Settings {
	if !algorithmSet {
		s.Algorithm = DefaultAlgorithm
		if inst.algorithmSet {
			s.Algorithm = inst.Defaults.Algorithm
		}
	}
	if s.MaxExpansions == 0 {
		s.MaxExpansions = inst.Defaults.MaxExpansions
	}

	return s
}

// Solve runs one search to completion.
// The report is non-nil whenever the search was started, even on error.
func (inst *Instance) Solve(env Env, s Settings) (*Report, error) {
	return inst.bind.solve(env, inst.Kind, s)
}

// Trace steps a search one expansion at a time, calling emit after each
// step. It stops at a terminal status or after maxSteps steps (0 means no
// limit); an error from emit aborts the trace and is returned.
func (inst *Instance) Trace(env Env, s Settings, maxSteps int, emit func(Snapshot) error) (*Report, error) {
	return inst.bind.trace(env, inst.Kind, s, maxSteps, emit)
}

// Compare solves the problem with every algorithm. A failing run is
// recorded in its report and does not stop the others; the first error in
// algorithm order is returned alongside all reports, which keep that order.
//
// With s.Workers > 1 the runs share the problem concurrently, each on its
// own search handle. In turn, a cancelled run skips the remaining ones.
func (inst *Instance) Compare(env Env, s Settings) ([]*Report, error) {
	algs := search.Algorithms()
	reports := make([]*Report, len(algs))
	errs := make([]error, len(algs))

	if s.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(s.Workers)
		for i, alg := range algs {
			g.Go(func() error {
				run := s
				run.Algorithm = alg
				reports[i], errs[i] = inst.Solve(env, run)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, alg := range algs {
			s.Algorithm = alg
			reports[i], errs[i] = inst.Solve(env, s)
			if errors.Is(errs[i], search.ErrCancelled) {
				break
			}
		}
	}

	var (
		out      []*Report
		firstErr error
	)
	for i, r := range reports {
		if errs[i] != nil && firstErr == nil {
			firstErr = errs[i]
		}
		if r != nil {
			out = append(out, r)
		}
	}

	return out, firstErr
}

func (a adapter[S]) newSearch(env Env, s Settings) (*search.Search[S], error) {
	return search.New[S](a.problem, s.Algorithm,
		search.WithContext[S](env.ctx()),
		search.WithMaxExpansions[S](s.MaxExpansions),
		search.WithLogger[S](env.logger().With(slog.String("run_id", s.RunID))),
	)
}

func (a adapter[S]) solve(env Env, kind string, s Settings) (*Report, error) {
	srch, err := a.newSearch(env, s)
	if err != nil {
		return nil, err
	}
	res, runErr := srch.Run()

	return a.finish(env, kind, s, srch.Status(), res, runErr), runErr
}

func (a adapter[S]) trace(env Env, kind string, s Settings, maxSteps int, emit func(Snapshot) error) (*Report, error) {
	srch, err := a.newSearch(env, s)
	if err != nil {
		return nil, err
	}
	for step := 1; maxSteps <= 0 || step <= maxSteps; step++ {
		sr, stepErr := srch.Step()
		if stepErr != nil {
			return a.partial(env, kind, s, srch, stepErr), stepErr
		}
		snap := Snapshot{
			Step:     step,
			Expanded: a.render(sr.Expanded),
			Frontier: a.renderAll(sr.Frontier),
			Closed:   len(sr.Closed),
			Stale:    sr.Stale,
			Status:   sr.Status.String(),
		}
		if err = emit(snap); err != nil {
			return a.partial(env, kind, s, srch, err), err
		}
		if sr.Done {
			break
		}
	}
	if !srch.Status().Terminal() {
		return a.partial(env, kind, s, srch, nil), nil
	}
	res, runErr := srch.Run()

	return a.finish(env, kind, s, srch.Status(), res, runErr), runErr
}

// partial reports a handle that is not terminal or whose Result cannot be
// obtained without advancing it further.
func (a adapter[S]) partial(env Env, kind string, s Settings, srch *search.Search[S], err error) *Report {
	res := &search.Result[S]{Algorithm: srch.Algorithm(), Metrics: srch.Metrics()}

	return a.finish(env, kind, s, srch.Status(), res, err)
}

func (a adapter[S]) finish(env Env, kind string, s Settings, status search.Status, res *search.Result[S], err error) *Report {
	r := &Report{
		RunID:         s.RunID,
		Kind:          kind,
		Algorithm:     res.Algorithm.String(),
		Status:        status.String(),
		Found:         res.Found,
		Path:          a.renderAll(res.Path),
		PathLength:    res.Metrics.PathLength,
		PathCost:      res.Metrics.PathCost,
		NodesExplored: res.Metrics.NodesExplored,
		Pushed:        res.Metrics.Pushed,
		StalePops:     res.Metrics.StalePops,
		MaxFrontier:   res.Metrics.MaxFrontier,
		Elapsed:       res.Metrics.Elapsed,
	}
	if err != nil {
		r.Error = err.Error()
	}
	outcome := Outcome(res.Found, err)
	if !status.Terminal() && err == nil {
		outcome = OutcomeIncomplete
	}

	env.logger().Info("run finished",
		slog.String("run_id", s.RunID),
		slog.String("kind", kind),
		slog.String("algorithm", r.Algorithm),
		slog.String("outcome", outcome),
		slog.Int("nodes_explored", r.NodesExplored),
		slog.Int("path_length", r.PathLength),
		slog.Float64("path_cost", r.PathCost),
		slog.Duration("elapsed", r.Elapsed),
	)
	if status.Terminal() {
		env.Metrics.ObserveRun(telemetry.Run{
			Kind:      kind,
			Algorithm: r.Algorithm,
			Outcome:   outcome,
			Explored:  r.NodesExplored,
			PathCost:  r.PathCost,
			Elapsed:   r.Elapsed,
		})
	}

	return r
}

func (a adapter[S]) renderAll(states []S) []string {
	out := make([]string, len(states))
	for i, st := range states {
		out[i] = a.render(st)
	}
	return out
}

// Outcome classifies a run for metrics and logs.
func Outcome(found bool, err error) string {
	switch {
	case errors.Is(err, search.ErrExpansionLimit):
		return telemetry.OutcomeLimit
	case errors.Is(err, search.ErrCancelled):
		return telemetry.OutcomeCancelled
	case err != nil:
		return telemetry.OutcomeError
	case found:
		return telemetry.OutcomeFound
	default:
		return telemetry.OutcomeExhausted
	}
}

func parseAlgorithm(name string) (search.Algorithm, error) {
	alg, err := search.ParseAlgorithm(name)
	if err != nil {
		return 0, fmt.Errorf("runner: %w", err)
	}
	return alg, nil
}
