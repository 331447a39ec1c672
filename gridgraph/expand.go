package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// origin is a virtual state outside every grid, joined at cost 0 to every
// cell of the source component.
var origin = Point{-1, -1}

// islandProblem prices a move by 1 when it enters an obstacle cell (the cell
// must be converted) and 0 otherwise. Corner cutting is ignored: every
// in-bounds neighbor under Conn is reachable.
type islandProblem struct {
	gg  *GridGraph
	src []Point
	dst map[Point]struct{}
}

func (ip *islandProblem) Initial() Point { return origin }

func (ip *islandProblem) IsGoal(s Point) bool {
	_, ok := ip.dst[s]
	return ok
}

func (ip *islandProblem) Successors(s Point) []search.Successor[Point] {
	if s == origin {
		out := make([]search.Successor[Point], len(ip.src))
		for i, p := range ip.src {
			out[i] = search.Successor[Point]{State: p}
		}
		return out
	}
	out := make([]search.Successor[Point], 0, len(ip.gg.offsets))
	for _, d := range ip.gg.offsets {
		q := Point{s.X + d[0], s.Y + d[1]}
		if !ip.gg.InBounds(q.X, q.Y) {
			continue
		}
		var c float64
		if !ip.gg.Passable(q) {
			c = 1
		}
		out = append(out, search.Successor[Point]{State: q, Cost: c})
	}
	return out
}

// ExpandIsland finds a minimum-conversion path of obstacle cells to connect
// any cell in component srcComp to any cell in component dstComp, as
// identified by ConnectedComponents(). Each converted cell costs 1.
// Returns the cells of the path (including the start and end land cells)
// and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Uniform-cost search from a virtual origin linked to all srcComp cells:
//     • Moving into a passable cell → cost 0
//     • Moving into an obstacle     → cost 1
//  3. Stop when any dstComp cell is popped.
//
// Complexity: O(W·H·d·log(W·H)).
// Memory:     O(W·H).
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []Point, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("%w: %d, %d of %d", ErrComponentIndex, srcComp, dstComp, len(comps))
	}
	ip := &islandProblem{
		gg:  gg,
		src: comps[srcComp],
		dst: make(map[Point]struct{}, len(comps[dstComp])),
	}
	for _, p := range comps[dstComp] {
		ip.dst[p] = struct{}{}
	}

	s, err := search.New[Point](ip, search.UCS)
	if err != nil {
		return nil, 0, err
	}
	res, err := s.Run()
	if err != nil {
		return nil, 0, err
	}
	if !res.Found {
		return nil, 0, ErrNoPath
	}

	return res.Path[1:], int(res.Metrics.PathCost), nil
}
