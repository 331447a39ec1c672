// Package puzzle adapts the N×N sliding-tile puzzle (N in 2..4) to the
// search engine.
//
// What:
//
//	A Board is a comparable value holding its side and tiles in a fixed
//	array, so it can key the engine's closed set directly. Tile 0 is the
//	blank. A move slides the blank Up, Down, Left or Right, in that order,
//	and costs 1.
//
// Heuristics:
//
//	Misplaced  number of non-blank tiles off their goal cell (h1)
//	Manhattan  sum of row+column distances to goal cells (h2, default)
//	Zero       no estimate; A* degenerates to UCS
//
// Both Misplaced and Manhattan are admissible and consistent, so A* with
// either returns an optimal move count; Manhattan dominates Misplaced and
// expands no more nodes.
//
// Solvability:
//
//	Only half of all arrangements reach a given goal. Solvable decides it
//	in O(n²) from permutation parity and blank distance. NewProblem does
//	not reject unsolvable pairs; searching one exhausts n²!/2 states.
//
// Usage:
//
//	start, _ := puzzle.NewBoard([][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}})
//	goal, _ := puzzle.Goal(3)
//	p, _ := puzzle.NewProblem(start, goal, puzzle.WithHeuristic(puzzle.Manhattan))
//	s, _ := search.New[puzzle.Board](p, search.AStar)
//	res, _ := s.Run()
package puzzle
