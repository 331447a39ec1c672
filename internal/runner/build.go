package runner

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/route"
)

// ErrUnknownKind indicates a File whose kind has no adapter.
var ErrUnknownKind = errors.New("runner: unknown problem kind")

// Instance is a problem built from a config.File, ready to be searched
// any number of times.
type Instance struct {
	// Kind is the config kind: puzzle, grid or graph.
	Kind string

	// Warnings lists conditions worth reporting before a run, such as an
	// unsolvable puzzle or an inconsistent heuristic.
	Warnings []string

	// Defaults carries the run settings named in the file.
	Defaults Settings

	algorithmSet bool
	bind         binding
}

// Build turns f into an Instance. The file is validated first.
func Build(f *config.File) (*Instance, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	inst := &Instance{Kind: f.Kind, Defaults: Settings{MaxExpansions: f.MaxExpansions}}
	if f.Algorithm != "" {
		alg, err := parseAlgorithm(f.Algorithm)
		if err != nil {
			return nil, err
		}
		inst.Defaults.Algorithm = alg
		inst.algorithmSet = true
	}

	var err error
	switch f.Kind {
	case config.KindPuzzle:
		err = inst.buildPuzzle(f.Puzzle, f.Heuristic)
	case config.KindGrid:
		err = inst.buildGrid(f.Grid, f.Heuristic)
	case config.KindGraph:
		err = inst.buildGraph(f.Graph, f.Heuristic)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}
	if err != nil {
		return nil, err
	}

	return inst, nil
}

func (inst *Instance) buildPuzzle(c *config.Puzzle, heuristic string) error {
	start, err := puzzle.NewBoard(c.Start)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	goal, err := puzzle.Goal(start.Side())
	if err != nil {
		return err
	}
	if c.Goal != nil {
		if goal, err = puzzle.NewBoard(c.Goal); err != nil {
			return fmt.Errorf("goal: %w", err)
		}
	}
	h, err := puzzle.ParseHeuristic(heuristic)
	if err != nil {
		return err
	}
	if heuristic == "" {
		h = puzzle.Manhattan
	}
	p, err := puzzle.NewProblem(start, goal, puzzle.WithHeuristic(h))
	if err != nil {
		return err
	}
	if !puzzle.Solvable(start, goal) {
		inst.Warnings = append(inst.Warnings,
			"puzzle is unsolvable: the goal is outside the start's parity class and every search will exhaust")
	}
	inst.bind = adapter[puzzle.Board]{problem: p, render: puzzle.Board.String}

	return nil
}

func (inst *Instance) buildGrid(c *config.Grid, heuristic string) error {
	opts := gridgraph.DefaultGridOptions()
	if c.Conn == 8 {
		opts.Conn = gridgraph.Conn8
	}
	if c.Costs == "terrain" {
		opts.Costs = gridgraph.TerrainCost
	}
	if c.LandThreshold != nil {
		opts.LandThreshold = *c.LandThreshold
	}
	opts.NoCornerCutting = c.NoCornerCutting

	gg, err := gridgraph.NewGridGraph(c.Cells, opts)
	if err != nil {
		return err
	}
	var popts []gridgraph.ProblemOption
	if heuristic != "" {
		h, herr := gridgraph.ParseHeuristic(heuristic)
		if herr != nil {
			return herr
		}
		if h == gridgraph.Manhattan && opts.Conn == gridgraph.Conn8 {
			inst.Warnings = append(inst.Warnings,
				"manhattan overestimates diagonal moves on an 8-connected grid; A* may return a suboptimal path")
		}
		popts = append(popts, gridgraph.WithHeuristic(h))
	}
	start := gridgraph.Point{X: c.Start[0], Y: c.Start[1]}
	goal := gridgraph.Point{X: c.Goal[0], Y: c.Goal[1]}
	p, err := gg.Problem(start, goal, popts...)
	if err != nil {
		return err
	}
	inst.bind = adapter[gridgraph.Point]{problem: p, render: gridgraph.Point.String}

	return nil
}

func (inst *Instance) buildGraph(c *config.Graph, heuristic string) error {
	var ropts []route.Option
	switch strings.ToLower(heuristic) {
	case "", "zero", "none":
	case "straight-line", "straight_line", "euclidean":
		ropts = append(ropts, route.WithStraightLine())
	case "exact":
		ropts = append(ropts, route.WithExactHeuristic())
	default:
		return fmt.Errorf("runner: unknown graph heuristic %q", heuristic)
	}

	g := core.NewGraph(core.WithDirected(c.Directed))
	for _, v := range c.Vertices {
		if err := g.AddVertex(v.ID); err != nil {
			return err
		}
		if v.X != nil && v.Y != nil {
			if err := g.SetPosition(v.ID, *v.X, *v.Y); err != nil {
				return err
			}
		}
	}
	for i, e := range c.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("edge %d (%s→%s): %w", i, e.From, e.To, err)
		}
	}

	p, err := route.NewProblem(g, c.Start, c.Goal, ropts...)
	if err != nil {
		return err
	}
	if !p.Consistent() {
		msg := "some edge is shorter than the straight line between its ends; A* may return a suboptimal path"
		if ok, witness, aerr := p.Admissible(); aerr == nil && !ok {
			msg += fmt.Sprintf(" (the estimate at %q exceeds its true cost)", witness)
		}
		inst.Warnings = append(inst.Warnings, msg)
	}
	inst.bind = adapter[string]{problem: p, render: func(s string) string { return s }}

	return nil
}

// LogWarnings emits every Warning on l at Warn level.
func (inst *Instance) LogWarnings(l *slog.Logger) {
	for _, w := range inst.Warnings {
		l.Warn(w, slog.String("kind", inst.Kind))
	}
}
