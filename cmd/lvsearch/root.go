package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/runner"
	"github.com/katalvlaran/lvsearch/internal/telemetry"
	"github.com/katalvlaran/lvsearch/search"
)

// app holds state shared by every subcommand of one invocation.
type app struct {
	out, errOut io.Writer

	logLevel    string
	logFormat   string
	dumpMetrics bool

	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *telemetry.Metrics
}

// runFlags are the per-run flags shared by solve, trace and compare.
type runFlags struct {
	algorithm     string
	heuristic     string
	maxExpansions int
	json          bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "State-space search over puzzles, grids and road maps",
		Long: `lvsearch runs BFS, DFS, uniform-cost, A* and greedy best-first search
on problems described in YAML files of kind puzzle, grid or graph.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	pf.BoolVar(&a.dumpMetrics, "metrics", false, "write gathered Prometheus metrics to stderr after the command")

	root.AddCommand(a.newSolveCmd(), a.newTraceCmd(), a.newCompareCmd(), a.newGenCmd())

	return root
}

// setup builds the logger and the metrics registry from the global flags.
func (a *app) setup() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	hopts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(a.logFormat) {
	case "text":
		a.logger = slog.New(slog.NewTextHandler(a.errOut, hopts))
	case "json":
		a.logger = slog.New(slog.NewJSONHandler(a.errOut, hopts))
	default:
		return fmt.Errorf("--log-format: want text or json, got %q", a.logFormat)
	}
	a.registry = prometheus.NewRegistry()
	a.metrics = telemetry.New(a.registry)

	return nil
}

func (a *app) addRunFlags(cmd *cobra.Command, rf *runFlags, withAlgorithm bool) {
	f := cmd.Flags()
	if withAlgorithm {
		f.StringVarP(&rf.algorithm, "algorithm", "a", "",
			"bfs, dfs, ucs, astar or greedy (default: the file's, else astar)")
	}
	f.StringVar(&rf.heuristic, "heuristic", "", "override the file's heuristic")
	f.IntVar(&rf.maxExpansions, "max-expansions", 0, "abort after this many expansions (0: the file's limit, else none)")
	f.BoolVar(&rf.json, "json", false, "print JSON instead of text")
}

// load reads the problem file, applies the heuristic override and builds it.
func (a *app) load(path string, rf *runFlags) (*runner.Instance, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if rf.heuristic != "" {
		f.Heuristic = rf.heuristic
	}
	inst, err := runner.Build(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	inst.LogWarnings(a.logger.With(slog.String("file", path)))

	return inst, nil
}

// settings resolves the run settings from flags and file defaults.
func (a *app) settings(cmd *cobra.Command, inst *runner.Instance, rf *runFlags, runID string) (runner.Settings, error) {
	s := runner.Settings{MaxExpansions: rf.maxExpansions, RunID: runID}
	set := cmd.Flags().Changed("algorithm")
	if set {
		alg, err := search.ParseAlgorithm(rf.algorithm)
		if err != nil {
			return s, err
		}
		s.Algorithm = alg
	}

	return inst.Resolve(s, set), nil
}

func (a *app) env(cmd *cobra.Command) runner.Env {
	return runner.Env{Context: cmd.Context(), Logger: a.logger, Metrics: a.metrics}
}

// finish dumps the metrics registry when asked to.
func (a *app) finish() error {
	if !a.dumpMetrics {
		return nil
	}

	return telemetry.WriteText(a.errOut, a.registry)
}
