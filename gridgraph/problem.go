package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// ProblemOption configures a Problem.
type ProblemOption func(*Problem)

// WithHeuristic selects the distance estimate for informed search.
// Default: Manhattan for Conn4 grids, Octile for Conn8 grids.
func WithHeuristic(h Heuristic) ProblemOption {
	return func(p *Problem) { p.heuristic = h }
}

// Problem is shortest-path search on a GridGraph from one cell to another.
// It implements search.Problem, search.Informed and search.Validator over Point.
type Problem struct {
	grid        *GridGraph
	start, goal Point
	heuristic   Heuristic
}

var (
	_ search.Problem[Point]  = (*Problem)(nil)
	_ search.Informed[Point] = (*Problem)(nil)
	_ search.Validator       = (*Problem)(nil)
)

// Problem builds the path problem start→goal on gg.
// Returns ErrOutOfBounds or ErrBlocked when either endpoint is not a
// passable cell, and ErrBadOption for an unknown heuristic.
func (gg *GridGraph) Problem(start, goal Point, opts ...ProblemOption) (*Problem, error) {
	p := &Problem{grid: gg, start: start, goal: goal, heuristic: Manhattan}
	if gg.Conn == Conn8 {
		p.heuristic = Octile
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks both endpoints and the heuristic.
func (p *Problem) Validate() error {
	if p.grid == nil {
		return ErrEmptyGrid
	}
	for _, pt := range [...]struct {
		name string
		at   Point
	}{{"start", p.start}, {"goal", p.goal}} {
		if !p.grid.InBounds(pt.at.X, pt.at.Y) {
			return fmt.Errorf("%w: %s %v in %dx%d grid", ErrOutOfBounds, pt.name, pt.at, p.grid.Width, p.grid.Height)
		}
		if !p.grid.Passable(pt.at) {
			return fmt.Errorf("%w: %s %v has value %d", ErrBlocked, pt.name, pt.at, p.grid.Value(pt.at))
		}
	}
	if p.heuristic < Zero || p.heuristic > Chebyshev {
		return fmt.Errorf("%w: %v", ErrBadOption, p.heuristic)
	}

	return nil
}

// Grid returns the underlying GridGraph.
func (p *Problem) Grid() *GridGraph { return p.grid }

// Start returns the start cell.
func (p *Problem) Start() Point { return p.start }

// Goal returns the goal cell.
func (p *Problem) Goal() Point { return p.goal }

// Initial returns the start cell.
func (p *Problem) Initial() Point { return p.start }

// IsGoal reports whether s is the goal cell.
func (p *Problem) IsGoal(s Point) bool { return s == p.goal }

// Successors returns the passable neighbors of s with their move cost.
func (p *Problem) Successors(s Point) []search.Successor[Point] {
	return p.grid.Neighbors(s)
}

// Heuristic returns the configured distance to the goal, scaled by the
// cheapest terrain price so it never exceeds the true remaining cost when
// the heuristic fits the connectivity.
func (p *Problem) Heuristic(s Point) float64 {
	return p.grid.minStep * Distance(p.heuristic, s, p.goal)
}
