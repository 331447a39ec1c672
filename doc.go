// Package lvsearch is a state-space search toolkit: one generic engine for
// breadth-first, depth-first, uniform-cost, A* and greedy best-first
// search, plus ready-made problems to run it on.
//
// Layout:
//
//	search/     — the engine: Problem[S], Search[S], frontiers, metrics, step snapshots
//	puzzle/     — sliding-tile boards (2×2 to 4×4), solvability, tile heuristics
//	gridgraph/  — 2D occupancy grids with 4/8 connectivity and terrain costs
//	core/       — weighted vertex/edge graph with optional 2D positions
//	route/      — shortest routes over a core.Graph, straight-line and exact heuristics
//	builder/    — seeded generators: scrambled boards, mazes, lattices, road maps
//	internal/   — YAML problem files, the run orchestrator, Prometheus metrics
//	cmd/        — the lvsearch CLI: solve, trace, compare, gen
//
// Quick ASCII example, a grid with a wall:
//
//	S . . .
//	# # # .
//	G . . .
//
//	BFS, UCS and A* return the same 9-state path around the wall; DFS may not.
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
package lvsearch
