// Package gridgraph treats a 2D grid of cells as a search space, enabling
// shortest-path search, component analysis and minimal-cost "island"
// expansions.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Problem adapts start→goal pathfinding on it to the search engine,
//     with Point{X,Y} as the state.
//   - Identifies connected components ("islands") of cells with value ≥ LandThreshold.
//   - Computes minimal conversions to connect two island sets.
//   - Converts to a *core.Graph for route search or other graph tools.
//
// Moves and costs:
//
//	Conn4  N, E, S, W             cost 1
//	Conn8  N, NE, E, SE, S, SW, W, NW  cost 1 orthogonal, √2 diagonal
//
//	TerrainCost multiplies the move cost by the value of the destination
//	cell, so a cell valued 3 costs three times as much to enter.
//	NoCornerCutting drops a diagonal move if either cell it squeezes past
//	is an obstacle.
//
// Heuristics:
//
//	Manhattan  |dx|+|dy|            admissible on Conn4 only
//	Euclidean  √(dx²+dy²)            admissible on both
//	Octile     max+(√2−1)·min       admissible on both, exact on open Conn8
//	Chebyshev  max(|dx|,|dy|)       admissible on both
//	Zero       0
//
//	Every estimate is scaled by the cheapest passable price (1 under
//	UnitCost, the minimum land value under TerrainCost). Manhattan on a
//	Conn8 grid overestimates diagonal moves; A* then runs but may return a
//	longer path.
//
// Complexity:
//
//   - Neighbors:           O(d)
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:        O(W×H×d×log(W×H)), Memory: O(W×H).
//   - ToGraph:             O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.Costs: UnitCost or TerrainCost.
//   - GridOptions.NoCornerCutting: forbid diagonal squeezes.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadOption: unknown connectivity, cost model or heuristic.
//   - ErrNegativeTerrain: passable negative cell under TerrainCost.
//   - ErrOutOfBounds, ErrBlocked: unusable start or goal.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
