// Package builder generates search instances: scrambled sliding-tile
// boards, mazes and random grids, and positioned road-map graphs.
//
// Every generator is deterministic for a fixed seed:
//
//	board, _ := builder.Scramble(3, 20, builder.WithSeed(7))
//	cells, _ := builder.Maze(21, 11, builder.WithSeed(7))
//	g, _ := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithDetour(1.5)},
//		builder.RandomGeometric(40, 25))
//
// Graph generators follow the Constructor pattern: BuildGraph creates a
// core.Graph and applies constructors in order, so topologies compose.
// Generated edge weights never fall below the Euclidean distance between
// their endpoints, which keeps route.WithStraightLine admissible.
//
// Option constructors (WithX) panic on meaningless input. Generators only
// return errors wrapping the package sentinels.
package builder
