package main

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/runner"
	"github.com/katalvlaran/lvsearch/search"
)

func (a *app) newSolveCmd() *cobra.Command {
	rf := &runFlags{}
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a problem file with one algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := a.load(args[0], rf)
			if err != nil {
				return err
			}
			s, err := a.settings(cmd, inst, rf, uuid.NewString())
			if err != nil {
				return err
			}
			r, runErr := inst.Solve(a.env(cmd), s)
			if r != nil {
				if err = a.printReport(r, rf.json); err != nil {
					return err
				}
			}

			return errors.Join(runErr, a.finish())
		},
	}
	a.addRunFlags(cmd, rf, true)

	return cmd
}

func (a *app) newTraceCmd() *cobra.Command {
	rf := &runFlags{}
	var maxSteps int
	cmd := &cobra.Command{
		Use:   "trace FILE",
		Short: "Step through a search and print the frontier after every expansion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := a.load(args[0], rf)
			if err != nil {
				return err
			}
			s, err := a.settings(cmd, inst, rf, uuid.NewString())
			if err != nil {
				return err
			}
			emit := func(snap runner.Snapshot) error { return a.printSnapshot(snap, rf.json) }
			r, runErr := inst.Trace(a.env(cmd), s, maxSteps, emit)
			if r != nil {
				if err = a.printReport(r, rf.json); err != nil {
					return err
				}
			}

			return errors.Join(runErr, a.finish())
		},
	}
	a.addRunFlags(cmd, rf, true)
	cmd.Flags().IntVar(&maxSteps, "max-steps", 50, "stop after this many steps (0: until the search ends)")

	return cmd
}

func (a *app) newCompareCmd() *cobra.Command {
	rf := &runFlags{}
	var workers int
	cmd := &cobra.Command{
		Use:   "compare FILE",
		Short: "Solve a problem file with every algorithm and tabulate the metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := a.load(args[0], rf)
			if err != nil {
				return err
			}
			s, err := a.settings(cmd, inst, rf, uuid.NewString())
			if err != nil {
				return err
			}
			s.Workers = workers
			reports, runErr := inst.Compare(a.env(cmd), s)
			if err = a.printTable(reports, rf.json); err != nil {
				return err
			}
			// Per-algorithm failures are already in the table; only an
			// interrupted comparison fails the command.
			if !errors.Is(runErr, search.ErrCancelled) {
				runErr = nil
			}

			return errors.Join(runErr, a.finish())
		},
	}
	a.addRunFlags(cmd, rf, false)
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "run up to this many algorithms at once")

	return cmd
}
