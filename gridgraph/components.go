package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of passable
// cells, moving the way Neighbors does (connectivity and corner rule).
// Components are listed in row-major order of their first cell; each one
// holds its cells in breadth-first order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Point {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Point

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{x, y}
			if !gg.Passable(p) || seen[gg.index(p)] {
				continue
			}
			comps = append(comps, gg.flood(p, seen))
		}
	}

	return comps
}

// ComponentOf returns the cells reachable from p, p first, in breadth-first
// order. It is empty when p is out of bounds or an obstacle. Its length is
// the number of states any exhaustive search from p closes.
func (gg *GridGraph) ComponentOf(p Point) []Point {
	if !gg.Passable(p) {
		return nil
	}

	return gg.flood(p, make([]bool, gg.Width*gg.Height))
}

// flood collects the component of start, marking seen.
func (gg *GridGraph) flood(start Point, seen []bool) []Point {
	queue := []Point{start}
	seen[gg.index(start)] = true

	for qi := 0; qi < len(queue); qi++ {
		for _, s := range gg.Neighbors(queue[qi]) {
			vi := gg.index(s.State)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, s.State)
			}
		}
	}

	return queue
}
