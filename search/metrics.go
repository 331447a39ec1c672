package search

import (
	"fmt"
	"time"
)

// Metrics accumulates monotonically during a run and is final once the
// run reaches a terminal status.
type Metrics struct {
	// NodesExplored counts closed-set insertions: one per true expansion,
	// never per push or per stale pop.
	NodesExplored int

	// PathLength is the number of states on the returned path (0 if none).
	PathLength int

	// PathCost is the sum of step costs along the returned path, recomputed
	// from the Problem (0 if none).
	PathCost float64

	// Elapsed is the wall time of Run, or the cumulative time of Step calls.
	Elapsed time.Duration

	// Pushed counts frontier insertions, the root included.
	Pushed int

	// StalePops counts popped entries discarded because their state was closed.
	StalePops int

	// MaxFrontier is the largest frontier length observed.
	MaxFrontier int
}

// String renders the headline figures on one line.
func (m Metrics) String() string {
	return fmt.Sprintf("explored=%d length=%d cost=%g elapsed=%s",
		m.NodesExplored, m.PathLength, m.PathCost, m.Elapsed)
}

// StepResult is the observable outcome of one Step.
type StepResult[S comparable] struct {
	// Expanded is the state popped in this step: the expanded state, or the
	// goal on the terminating step. Zero when the frontier was already empty.
	Expanded S

	// Frontier lists distinct frontier states in pop order.
	Frontier []S

	// Closed lists expanded states in expansion order.
	Closed []S

	// Stale is the number of closed duplicates discarded during this step.
	Stale int

	// Done reports a terminal status; Found reports that a goal was reached.
	Done  bool
	Found bool

	Status Status
}

// Result is the outcome of a completed (or aborted) run.
type Result[S comparable] struct {
	Algorithm Algorithm
	Found     bool
	Path      []S
	Metrics   Metrics
}
