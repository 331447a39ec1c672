package puzzle

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// Option configures a Problem.
type Option func(*Problem)

// WithHeuristic selects the estimate returned by Problem.Heuristic.
// Default: Manhattan.
func WithHeuristic(h Heuristic) Option {
	return func(p *Problem) { p.heuristic = h }
}

// Problem is the sliding-tile search problem: every blank move costs 1.
// It implements search.Problem, search.Informed and search.Validator over Board.
type Problem struct {
	start, goal Board
	heuristic   Heuristic
	goalPos     [maxCells]uint8
}

var (
	_ search.Problem[Board]  = (*Problem)(nil)
	_ search.Informed[Board] = (*Problem)(nil)
	_ search.Validator       = (*Problem)(nil)
)

// NewProblem builds a puzzle from start to goal.
// Unsolvable pairs are accepted: searching them exhausts the reachable half
// of the state space. Use Solvable to check up front.
func NewProblem(start, goal Board, opts ...Option) (*Problem, error) {
	p := &Problem{start: start, goal: goal, heuristic: Manhattan}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.goalPos = goal.positions()

	return p, nil
}

// Validate reports a zero Board, differing sides or an unknown heuristic.
func (p *Problem) Validate() error {
	if p.start.side == 0 || p.goal.side == 0 {
		return fmt.Errorf("%w: zero board", ErrBadSide)
	}
	if p.start.side != p.goal.side {
		return fmt.Errorf("%w: %d vs %d", ErrSideMismatch, p.start.side, p.goal.side)
	}
	switch p.heuristic {
	case Zero, Misplaced, Manhattan:
	default:
		return fmt.Errorf("%w: %v", ErrUnknownHeuristic, p.heuristic)
	}

	return nil
}

// Initial returns the start board.
func (p *Problem) Initial() Board { return p.start }

// Goal returns the goal board.
func (p *Problem) Goal() Board { return p.goal }

// IsGoal reports whether b equals the goal board.
func (p *Problem) IsGoal(b Board) bool { return b == p.goal }

// Successors returns the boards one blank move away, each at cost 1.
func (p *Problem) Successors(b Board) []search.Successor[Board] {
	moves := b.Moves()
	out := make([]search.Successor[Board], len(moves))
	for i, m := range moves {
		out[i] = search.Successor[Board]{State: m, Cost: 1}
	}

	return out
}

// Heuristic returns the configured estimate of moves left from b.
// Both non-zero heuristics are admissible and consistent under unit cost.
func (p *Problem) Heuristic(b Board) float64 {
	switch p.heuristic {
	case Misplaced:
		return float64(MisplacedTiles(b, p.goal))
	case Manhattan:
		return float64(manhattan(b, p.goalPos))
	default:
		return 0
	}
}
