// Package search implements BFS, DFS, UCS, A* and greedy best-first search
// over any Problem, behind one driver that can run to completion or advance
// one pop/expand cycle at a time.
package search

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// Search is the handle of one run over one Problem. It owns its frontier,
// closed set and metrics; two handles never share mutable state, even over
// the same Problem. A Search is not safe for concurrent use.
type Search[S comparable] struct {
	problem Problem[S]
	alg     Algorithm
	opts    Options[S]
	h       Heuristic[S]

	// markOnPush is the BFS/DFS rule: a state enters the frontier at most once.
	markOnPush bool

	frontier Frontier[S]
	closed   map[S]struct{}
	order    []S // closed states in expansion order
	seen     map[S]struct{}
	seq      uint64

	status    Status
	cancelled bool
	err       error
	path      []S
	last      StepResult[S]
	metrics   Metrics
}

// New initializes a Search of p with alg. It validates p if it implements
// Validator, returning ErrMalformedProblem on failure. Any invalid option
// yields ErrOptionViolation.
func New[S comparable](p Problem[S], alg Algorithm, opts ...Option[S]) (*Search[S], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if v, ok := p.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedProblem, err)
		}
	}

	s := &Search[S]{
		problem:    p,
		alg:        alg,
		opts:       o,
		h:          resolveHeuristic(p, o.Heuristic),
		markOnPush: alg == BFS || alg == DFS,
	}
	if err := s.init(); err != nil {
		return nil, err
	}

	return s, nil
}

// init builds empty run structures and seeds the frontier with the root.
func (s *Search[S]) init() error {
	f, err := NewFrontier[S](s.alg)
	if err != nil {
		return err
	}
	s.frontier = f
	s.closed = make(map[S]struct{})
	s.order = nil
	s.seen = make(map[S]struct{})
	s.seq = 0
	s.status = Ready
	s.cancelled = false
	s.err = nil
	s.path = nil
	s.last = StepResult[S]{}
	s.metrics = Metrics{}

	s.push(&Node[S]{State: s.problem.Initial()})

	return nil
}

// Reset returns the handle to Ready with an empty closed set, fresh
// metrics and a frontier holding only the initial state. It clears Cancel
// but keeps the WithContext context: once that is done, the next Step
// aborts again.
func (s *Search[S]) Reset() {
	// init only fails on an invalid algorithm, which New already rejected.
	_ = s.init()
}

// Cancel stops the run before the next step. The frontier, closed set and
// metrics stay inspectable; the handle cannot be advanced again until Reset.
func (s *Search[S]) Cancel() {
	s.cancelled = true
}

// Algorithm returns the discipline of this handle.
func (s *Search[S]) Algorithm() Algorithm { return s.alg }

// Status returns the current state-machine position.
func (s *Search[S]) Status() Status { return s.status }

// Err returns the abort cause, or nil.
func (s *Search[S]) Err() error { return s.err }

// Metrics returns a copy of the metrics gathered so far.
func (s *Search[S]) Metrics() Metrics { return s.metrics }

// Frontier returns the distinct frontier states in pop order.
func (s *Search[S]) Frontier() []S { return s.frontier.States() }

// Closed returns the expanded states in expansion order.
func (s *Search[S]) Closed() []S { return slices.Clone(s.order) }

// Step performs one pop/expand cycle and returns a snapshot of the run.
// Stale duplicates popped on the way are discarded within the same call.
// On a terminal handle Step is a no-op returning the terminal snapshot;
// for an aborted handle the abort error is returned again.
func (s *Search[S]) Step() (StepResult[S], error) {
	if s.status.Terminal() {
		return s.last, s.err
	}
	start := s.opts.Clock()
	res, err := s.advance(true)
	s.metrics.Elapsed += s.opts.Clock().Sub(start)

	return res, err
}

// Run advances until a terminal status and returns the path and metrics.
// A missing path is not an error: Found is false and Path empty.
// The returned Result is non-nil even when err is not, so an aborted run
// can still be inspected.
func (s *Search[S]) Run() (*Result[S], error) {
	if !s.status.Terminal() {
		start := s.opts.Clock()
		for !s.status.Terminal() {
			if _, err := s.advance(false); err != nil {
				break
			}
		}
		s.metrics.Elapsed += s.opts.Clock().Sub(start)
	}
	res := &Result[S]{
		Algorithm: s.alg,
		Found:     s.status == GoalFound,
		Path:      slices.Clone(s.path),
		Metrics:   s.metrics,
	}
	s.opts.Logger.Debug("search finished",
		slog.String("algorithm", s.alg.String()),
		slog.String("status", s.status.String()),
		slog.Bool("found", res.Found),
		slog.Int("nodes_explored", s.metrics.NodesExplored),
		slog.Int("path_length", s.metrics.PathLength),
		slog.Float64("path_cost", s.metrics.PathCost),
		slog.Duration("elapsed", s.metrics.Elapsed),
	)

	return res, s.err
}

// advance pops until it expands one node, reaches a goal, or empties the
// frontier. snapshot controls whether non-terminal results carry the
// frontier and closed lists; terminal results always do.
func (s *Search[S]) advance(snapshot bool) (StepResult[S], error) {
	if s.status == Ready {
		s.status = Running
		s.opts.Logger.Debug("search started",
			slog.String("algorithm", s.alg.String()),
			slog.Any("initial", s.problem.Initial()),
		)
	}
	if err := s.stopCause(); err != nil {
		return s.abort(err)
	}

	var res StepResult[S]
	for {
		n := s.frontier.Pop()
		if n == nil {
			s.status = Exhausted
			break
		}
		// The closed set is authoritative at pop time.
		if _, done := s.closed[n.State]; done {
			s.metrics.StalePops++
			res.Stale++
			continue
		}
		res.Expanded = n.State
		if s.problem.IsGoal(n.State) {
			if err := s.finish(n); err != nil {
				return s.abort(err)
			}
			break
		}
		if s.opts.MaxExpansions > 0 && s.metrics.NodesExplored >= s.opts.MaxExpansions {
			s.frontier.Push(n)
			return s.abort(fmt.Errorf("%w: %d", ErrExpansionLimit, s.opts.MaxExpansions))
		}
		if err := s.expand(n); err != nil {
			return s.abort(err)
		}

		break
	}

	res.Status = s.status
	res.Done = s.status.Terminal()
	res.Found = s.status == GoalFound
	if snapshot || res.Done {
		res.Frontier = s.frontier.States()
		res.Closed = slices.Clone(s.order)
	}
	if res.Done {
		s.last = res
	}

	return res, nil
}

// expand closes n and pushes every successor that is not closed yet.
func (s *Search[S]) expand(n *Node[S]) error {
	s.closed[n.State] = struct{}{}
	s.order = append(s.order, n.State)
	s.metrics.NodesExplored++
	if err := s.opts.OnExpand(n); err != nil {
		return fmt.Errorf("search: OnExpand error at %v: %w", n.State, err)
	}

	for _, sc := range s.problem.Successors(n.State) {
		if sc.Cost < 0 || math.IsNaN(sc.Cost) {
			return fmt.Errorf("%w: %v → %v cost=%g", ErrNegativeCost, n.State, sc.State, sc.Cost)
		}
		if _, done := s.closed[sc.State]; done {
			continue
		}
		if s.markOnPush {
			if _, ok := s.seen[sc.State]; ok {
				continue
			}
		}
		s.push(&Node[S]{
			State:  sc.State,
			G:      n.G + sc.Cost,
			Depth:  n.Depth + 1,
			Parent: n,
		})
	}

	return nil
}

// push stamps n with its heuristic and insertion sequence and enqueues it.
func (s *Search[S]) push(n *Node[S]) {
	if s.markOnPush {
		s.seen[n.State] = struct{}{}
	}
	if s.alg.Informed() {
		n.H = s.h(n.State)
	}
	n.seq = s.seq
	s.seq++
	s.frontier.Push(n)
	s.metrics.Pushed++
	if l := s.frontier.Len(); l > s.metrics.MaxFrontier {
		s.metrics.MaxFrontier = l
	}
	s.opts.OnPush(n)
}

// finish records the goal path and its recomputed cost.
func (s *Search[S]) finish(goal *Node[S]) error {
	path := goal.Path()
	cost, err := PathCost(s.problem, path)
	if err != nil {
		return err
	}
	s.path = path
	s.metrics.PathLength = len(path)
	s.metrics.PathCost = cost
	s.status = GoalFound

	return nil
}

// stopCause reports a pending external stop signal.
func (s *Search[S]) stopCause() error {
	if s.cancelled {
		return ErrCancelled
	}
	select {
	case <-s.opts.Ctx.Done():
		return fmt.Errorf("%w: %w", ErrCancelled, s.opts.Ctx.Err())
	default:
	}

	return nil
}

// abort moves the handle to Aborted, keeping its structures for inspection.
func (s *Search[S]) abort(err error) (StepResult[S], error) {
	s.status = Aborted
	s.err = err
	s.path = nil
	s.metrics.PathLength = 0
	s.metrics.PathCost = 0
	s.last = StepResult[S]{
		Frontier: s.frontier.States(),
		Closed:   slices.Clone(s.order),
		Done:     true,
		Status:   Aborted,
	}
	s.opts.Logger.Warn("search aborted",
		slog.String("algorithm", s.alg.String()),
		slog.Int("nodes_explored", s.metrics.NodesExplored),
		slog.Any("error", err),
	)

	return s.last, err
}
