// Command lvsearch solves sliding-tile puzzles, grid mazes and weighted
// road maps described in YAML problem files.
//
//	lvsearch solve   problem.yaml --algorithm ucs
//	lvsearch trace   problem.yaml --max-steps 20
//	lvsearch compare problem.yaml --json
//
// Run "lvsearch help" for the full flag list.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "lvsearch:", err)
		os.Exit(1)
	}
}
