// Package search defines the algorithms, options, statuses and sentinel
// errors shared by every search discipline.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Sentinel errors for search configuration and execution.
var (
	// ErrNilProblem is returned by New when the Problem is nil.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the supported set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrMalformedProblem wraps the error reported by Validator.Validate.
	// It separates configuration failures from a legitimate "no path" outcome.
	ErrMalformedProblem = errors.New("search: malformed problem")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNegativeCost is returned when a successor carries a negative or NaN step cost.
	ErrNegativeCost = errors.New("search: negative step cost")

	// ErrInvalidTransition is returned when two consecutive path states are
	// not related by the Problem's successor function.
	ErrInvalidTransition = errors.New("search: invalid transition")

	// ErrCancelled is returned once the run was stopped by Cancel or its context.
	ErrCancelled = errors.New("search: run cancelled")

	// ErrExpansionLimit is returned when MaxExpansions is reached before termination.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Algorithm selects the frontier discipline.
type Algorithm int

const (
	// BFS removes in FIFO order and marks states visited at insertion.
	BFS Algorithm = iota
	// DFS removes in LIFO order and marks states visited at insertion.
	DFS
	// UCS removes the minimum cumulative cost g first.
	UCS
	// AStar removes the minimum f = g + h first.
	AStar
	// Greedy removes the minimum heuristic h first (best-first search).
	Greedy
)

var algorithmNames = [...]string{
	BFS:    "bfs",
	DFS:    "dfs",
	UCS:    "ucs",
	AStar:  "astar",
	Greedy: "greedy",
}

// Algorithms lists every supported discipline in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, UCS, AStar, Greedy}
}

// String returns the lower-case short name of a.
func (a Algorithm) String() string {
	if a.Valid() {
		return algorithmNames[a]
	}

	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Valid reports whether a is one of the supported disciplines.
func (a Algorithm) Valid() bool {
	return a >= BFS && a <= Greedy
}

// Informed reports whether a consults the heuristic.
func (a Algorithm) Informed() bool {
	return a == AStar || a == Greedy
}

// ParseAlgorithm maps a name such as "bfs", "ucs", "a*" or "astar" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return BFS, nil
	case "dfs", "depth-first":
		return DFS, nil
	case "ucs", "uniform-cost", "dijkstra":
		return UCS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	case "greedy", "best-first":
		return Greedy, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Status is the driver state machine: Ready → Running → {GoalFound | Exhausted | Aborted}.
type Status int

const (
	// Ready means no step has been taken since New or Reset.
	Ready Status = iota
	// Running means at least one step was taken and the run has not terminated.
	Running
	// GoalFound is terminal: a goal state was popped.
	GoalFound
	// Exhausted is terminal: the frontier emptied without reaching a goal.
	Exhausted
	// Aborted is terminal: the run was cancelled or failed; it cannot be advanced.
	Aborted
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case GoalFound:
		return "goal-found"
	case Exhausted:
		return "exhausted"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Terminal reports whether s admits no further progress.
func (s Status) Terminal() bool {
	return s == GoalFound || s == Exhausted || s == Aborted
}

// Option configures a Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option[S comparable] func(*Options[S])

// Options holds the tunable parameters and hooks of one Search.
type Options[S comparable] struct {
	// Ctx is checked once per step; cancellation aborts the run.
	Ctx context.Context

	// Heuristic overrides any Informed implementation of the Problem.
	Heuristic Heuristic[S]

	// MaxExpansions, if > 0, aborts the run with ErrExpansionLimit once that
	// many states were expanded. 0 disables the limit.
	MaxExpansions int

	// OnPush is called for every node entering the frontier.
	OnPush func(n *Node[S])

	// OnExpand is called when a node is added to the closed set, before its
	// successors are generated. A non-nil error aborts the run.
	OnExpand func(n *Node[S]) error

	// Logger receives run lifecycle records.
	Logger *slog.Logger

	// Clock supplies wall time for Elapsed.
	Clock func() time.Time

	err error
}

// DefaultOptions returns Options with a background context, no heuristic
// override, no expansion limit, no-op hooks, a discarding logger and time.Now.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:           context.Background(),
		Heuristic:     nil,
		MaxExpansions: 0,
		OnPush:        func(*Node[S]) {},
		OnExpand:      func(*Node[S]) error { return nil },
		Logger:        slog.New(slog.DiscardHandler),
		Clock:         time.Now,
	}
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic installs h as the heuristic, overriding the Problem's own.
func WithHeuristic[S comparable](h Heuristic[S]) Option[S] {
	return func(o *Options[S]) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxExpansions limits the number of expanded states.
//
//	n > 0: abort after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions[S comparable](n int) Option[S] {
	return func(o *Options[S]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnPush registers a callback invoked for every frontier insertion.
func WithOnPush[S comparable](fn func(n *Node[S])) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnExpand registers a callback invoked for every expansion; returning
// an error from it aborts the run.
func WithOnExpand[S comparable](fn func(n *Node[S]) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger routes run lifecycle records to l.
func WithLogger[S comparable](l *slog.Logger) Option[S] {
	return func(o *Options[S]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock[S comparable](now func() time.Time) Option[S] {
	return func(o *Options[S]) {
		if now != nil {
			o.Clock = now
		}
	}
}
