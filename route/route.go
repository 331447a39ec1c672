// Package route adapts a weighted core.Graph to the search engine: states
// are vertex IDs, successors follow the graph's edges and step costs are
// edge weights.
//
// With WithStraightLine the problem also estimates the remaining cost as
// the Euclidean distance between vertex positions. That estimate is
// consistent, and A* optimal, when no edge weighs less than the distance
// between its endpoints; Consistent reports whether that holds.
//
// WithExactHeuristic instead precomputes the true cost-to-go of every
// vertex with DistancesTo, so A* expands only vertices on cheapest paths.
package route

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors for route problems.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrNegativeWeight indicates an edge with a negative weight anywhere in the graph.
	ErrNegativeWeight = errors.New("route: negative edge weight")

	// ErrMissingPosition indicates WithStraightLine on a graph whose vertices lack coordinates.
	ErrMissingPosition = errors.New("route: vertex has no position")
)

// Option configures a Problem.
type Option func(*Problem)

// WithStraightLine enables the Euclidean-distance heuristic. Every vertex
// must have a position. It replaces WithExactHeuristic.
func WithStraightLine() Option {
	return func(p *Problem) { p.straightLine, p.exact = true, false }
}

// WithExactHeuristic uses the cheapest cost to the goal as the heuristic.
// Vertices that cannot reach the goal estimate +Inf. It replaces
// WithStraightLine.
func WithExactHeuristic() Option {
	return func(p *Problem) { p.exact, p.straightLine = true, false }
}

// Problem is shortest-path search on a core.Graph between two vertices.
// The graph must not change while a search over it runs.
type Problem struct {
	g            *core.Graph
	start, goal  string
	straightLine bool
	gx, gy       float64 // goal position, when straightLine
	exact        bool
	togo         map[string]float64 // cost to goal, when exact
}

var (
	_ search.Problem[string]  = (*Problem)(nil)
	_ search.Informed[string] = (*Problem)(nil)
	_ search.Validator        = (*Problem)(nil)
)

// NewProblem builds the route problem start→goal over g.
func NewProblem(g *core.Graph, start, goal string, opts ...Option) (*Problem, error) {
	p := &Problem{g: g, start: start, goal: goal}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.straightLine {
		p.gx, p.gy, _ = p.g.Position(p.goal)
	}
	if p.exact {
		togo, err := DistancesTo(p.g, p.goal)
		if err != nil {
			return nil, err
		}
		p.togo = togo
	}

	return p, nil
}

// Validate rejects a nil graph, unknown endpoints, any negative edge weight
// and, with WithStraightLine, any vertex without a position. It does not
// modify p, so concurrent searches may share one Problem.
func (p *Problem) Validate() error {
	if p.g == nil {
		return ErrNilGraph
	}
	for _, id := range [...]string{p.start, p.goal} {
		if !p.g.HasVertex(id) {
			return fmt.Errorf("%w: %q", core.ErrVertexNotFound, id)
		}
	}
	for _, e := range p.g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: %s %s→%s = %g", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
	}
	if p.straightLine {
		for _, id := range p.g.Vertices() {
			if _, _, ok := p.g.Position(id); !ok {
				return fmt.Errorf("%w: %q", ErrMissingPosition, id)
			}
		}
	}

	return nil
}

// Initial returns the start vertex.
func (p *Problem) Initial() string { return p.start }

// IsGoal reports whether id is the goal vertex.
func (p *Problem) IsGoal(id string) bool { return id == p.goal }

// Successors returns the far end and weight of every edge leaving id, in
// edge insertion order.
func (p *Problem) Successors(id string) []search.Successor[string] {
	edges, err := p.g.Neighbors(id)
	if err != nil {
		return nil
	}
	out := make([]search.Successor[string], len(edges))
	for i, e := range edges {
		out[i] = search.Successor[string]{State: e.Other(id), Cost: e.Weight}
	}

	return out
}

// Heuristic returns the straight-line or exact distance from id to the
// goal, or 0 when neither is enabled.
func (p *Problem) Heuristic(id string) float64 {
	if p.exact {
		if d, ok := p.togo[id]; ok {
			return d
		}
		return math.Inf(1)
	}
	if !p.straightLine {
		return 0
	}
	x, y, _ := p.g.Position(id)

	return math.Hypot(x-p.gx, y-p.gy)
}

// Consistent reports whether every edge weighs at least the straight-line
// distance between its endpoints, which makes the straight-line heuristic
// consistent. It is true when the heuristic is disabled or exact.
func (p *Problem) Consistent() bool {
	if !p.straightLine {
		return true
	}
	const eps = 1e-9
	for _, e := range p.g.Edges() {
		fx, fy, _ := p.g.Position(e.From)
		tx, ty, _ := p.g.Position(e.To)
		if e.Weight+eps < math.Hypot(fx-tx, fy-ty) {
			return false
		}
	}

	return true
}

// Admissible reports whether the heuristic never overestimates the
// cheapest cost to the goal. It returns the first vertex that does.
func (p *Problem) Admissible() (ok bool, witness string, err error) {
	togo := p.togo
	if togo == nil {
		if togo, err = DistancesTo(p.g, p.goal); err != nil {
			return false, "", err
		}
	}
	const eps = 1e-9
	for _, id := range p.g.Vertices() {
		d, reach := togo[id]
		if reach && p.Heuristic(id) > d+eps {
			return false, id, nil
		}
	}

	return true, "", nil
}
