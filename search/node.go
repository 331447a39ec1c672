package search

import (
	"fmt"
	"math"
	"slices"
)

// Node records how a state was reached during one run.
// Parent is nil for the root; parents always precede their children, so the
// chain never forms a cycle.
type Node[S comparable] struct {
	State  S
	G      float64 // cumulative cost from the initial state
	H      float64 // heuristic estimate at creation time
	Depth  int     // number of transitions from the initial state
	Parent *Node[S]

	seq uint64 // insertion order, used for tie-breaking
}

// F returns the A* priority g + h.
func (n *Node[S]) F() float64 { return n.G + n.H }

// Seq returns the frontier insertion sequence number of n.
func (n *Node[S]) Seq() uint64 { return n.seq }

// Path reconstructs the states from the root to n, inclusive.
func (n *Node[S]) Path() []S {
	if n == nil {
		return nil
	}
	path := make([]S, 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur.State)
	}
	slices.Reverse(path)

	return path
}

// PathCost sums step costs along path by re-querying p.Successors for each
// consecutive pair, instead of trusting a node's stored G. When several
// successor entries reach the same state the cheapest one counts.
// Returns ErrInvalidTransition if a pair is not a legal move.
func PathCost[S comparable](p Problem[S], path []S) (float64, error) {
	total := 0.0
	for i := 1; i < len(path); i++ {
		c, ok := stepCost(p, path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: step %d %v → %v", ErrInvalidTransition, i, path[i-1], path[i])
		}
		total += c
	}

	return total, nil
}

// ValidatePath checks that path starts at p.Initial, ends at a goal, and
// that every consecutive pair is a legal transition.
func ValidatePath[S comparable](p Problem[S], path []S) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidTransition)
	}
	if path[0] != p.Initial() {
		return fmt.Errorf("%w: path starts at %v, not the initial state", ErrInvalidTransition, path[0])
	}
	if !p.IsGoal(path[len(path)-1]) {
		return fmt.Errorf("%w: path ends at non-goal %v", ErrInvalidTransition, path[len(path)-1])
	}
	_, err := PathCost(p, path)

	return err
}

func stepCost[S comparable](p Problem[S], from, to S) (float64, bool) {
	best, found := math.Inf(1), false
	for _, sc := range p.Successors(from) {
		if sc.State == to && sc.Cost < best {
			best, found = sc.Cost, true
		}
	}

	return best, found
}
