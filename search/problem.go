package search

// Successor pairs a reachable state with the non-negative cost of the move.
type Successor[S comparable] struct {
	State S
	Cost  float64
}

// Problem is a single search instance. It must not change while a Search
// over it is running.
//
// Successors must return step costs ≥ 0 and should not contain self-loops
// unless the domain permits a zero-effect move. The order of the returned
// slice is part of the instance: it fixes BFS/DFS expansion order and
// priority tie-breaks.
type Problem[S comparable] interface {
	Initial() S
	IsGoal(s S) bool
	Successors(s S) []Successor[S]
}

// Heuristic estimates the remaining cost from a state to the nearest goal.
// It should be admissible (never overestimate) and ideally consistent; the
// engine does not check either property.
type Heuristic[S comparable] func(s S) float64

// Informed is implemented by problems that carry their own heuristic.
type Informed[S comparable] interface {
	Heuristic(s S) float64
}

// Validator is implemented by problems that can detect a malformed
// instance before any search begins.
type Validator interface {
	Validate() error
}

// zeroHeuristic is used when neither an option nor the problem supplies one.
func zeroHeuristic[S comparable](S) float64 { return 0 }

// resolveHeuristic picks the option override, then the problem, then zero.
func resolveHeuristic[S comparable](p Problem[S], override Heuristic[S]) Heuristic[S] {
	if override != nil {
		return override
	}
	if inf, ok := p.(Informed[S]); ok {
		return inf.Heuristic
	}

	return zeroHeuristic[S]
}
