package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/internal/config"
)

// genFlags are shared by the gen subcommands.
type genFlags struct {
	seed      int64
	algorithm string
	heuristic string
}

func (a *app) newGenCmd() *cobra.Command {
	gf := &genFlags{}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random problem file on stdout",
	}
	pf := cmd.PersistentFlags()
	pf.Int64Var(&gf.seed, "seed", 0, "random seed (0: derive from the clock)")
	pf.StringVar(&gf.algorithm, "algorithm", "", "default algorithm to write into the file")
	pf.StringVar(&gf.heuristic, "heuristic", "", "heuristic to write into the file")

	cmd.AddCommand(a.newGenPuzzleCmd(gf), a.newGenGridCmd(gf), a.newGenGraphCmd(gf))

	return cmd
}

func (gf *genFlags) options(extra ...builder.BuilderOption) []builder.BuilderOption {
	seed := gf.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return append([]builder.BuilderOption{builder.WithSeed(seed)}, extra...)
}

func (a *app) writeProblem(gf *genFlags, f *config.File) error {
	f.Algorithm = gf.algorithm
	f.Heuristic = gf.heuristic
	if err := f.Validate(); err != nil {
		return err
	}

	return config.Encode(a.out, f)
}

func (a *app) newGenPuzzleCmd(gf *genFlags) *cobra.Command {
	var side, moves int
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Scramble a solved sliding-tile board by a random walk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := builder.Scramble(side, moves, gf.options()...)
			if err != nil {
				return err
			}

			return a.writeProblem(gf, &config.File{
				Kind:   config.KindPuzzle,
				Puzzle: &config.Puzzle{Start: b.Rows()},
			})
		},
	}
	cmd.Flags().IntVar(&side, "side", 3, "board side (2 to 4)")
	cmd.Flags().IntVar(&moves, "moves", 20, "random-walk length")

	return cmd
}

func (a *app) newGenGridCmd(gf *genFlags) *cobra.Command {
	var (
		width, height int
		blocked       float64
		maxCost       int
		maze          bool
		conn          int
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Generate a maze or a random obstacle grid from corner to corner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cells [][]int
				err   error
			)
			costs := ""
			if maze {
				cells, err = builder.Maze(width, height, gf.options()...)
			} else {
				var extra []builder.BuilderOption
				if maxCost > 1 {
					extra = append(extra, builder.WithMaxCost(maxCost))
					costs = "terrain"
				}
				cells, err = builder.RandomGrid(width, height, blocked, gf.options(extra...)...)
			}
			if err != nil {
				return err
			}
			goal := []int{width - 1, height - 1}
			if maze {
				// Rooms lie on even coordinates.
				goal = []int{(width - 1) &^ 1, (height - 1) &^ 1}
			}

			return a.writeProblem(gf, &config.File{
				Kind: config.KindGrid,
				Grid: &config.Grid{Cells: cells, Start: []int{0, 0}, Goal: goal, Conn: conn, Costs: costs},
			})
		},
	}
	f := cmd.Flags()
	f.IntVar(&width, "width", 21, "grid width")
	f.IntVar(&height, "height", 11, "grid height")
	f.Float64Var(&blocked, "blocked", 0.25, "wall probability for random grids")
	f.IntVar(&maxCost, "max-cost", 1, "terrain costs in [1, max-cost] for random grids")
	f.BoolVar(&maze, "maze", false, "carve a perfect maze instead of scattering walls")
	f.IntVar(&conn, "conn", 4, "connectivity written to the file: 4 or 8")

	return cmd
}

func (a *app) newGenGraphCmd(gf *genFlags) *cobra.Command {
	var (
		n        int
		radius   float64
		detour   float64
		directed bool
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate a random geometric road map between its first and last vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if detour < 1 {
				return fmt.Errorf("--detour must be ≥ 1, got %g", detour)
			}
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithDirected(directed)},
				gf.options(builder.WithExcelColumnIDs(), builder.WithDetour(detour)),
				builder.RandomGeometric(n, radius),
			)
			if err != nil {
				return err
			}
			section := graphSection(g)
			section.Start = builder.ExcelColumnIDFn(0)
			section.Goal = builder.ExcelColumnIDFn(n - 1)

			return a.writeProblem(gf, &config.File{Kind: config.KindGraph, Graph: section})
		},
	}
	f := cmd.Flags()
	f.IntVar(&n, "n", 20, "number of vertices")
	f.Float64Var(&radius, "radius", 30, "link vertices closer than this (square side is 100)")
	f.Float64Var(&detour, "detour", 1.3, "edge weight is length times a factor in [1, detour]")
	f.BoolVar(&directed, "directed", false, "emit a directed graph with both arcs per link")

	return cmd
}

// graphSection converts g into its config form. A directed graph lists
// both arcs of every link.
func graphSection(g *core.Graph) *config.Graph {
	section := &config.Graph{Directed: g.Directed()}
	for _, id := range g.Vertices() {
		v := config.Vertex{ID: id}
		if x, y, ok := g.Position(id); ok {
			v.X, v.Y = &x, &y
		}
		section.Vertices = append(section.Vertices, v)
	}
	for _, e := range g.Edges() {
		section.Edges = append(section.Edges, config.Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return section
}
