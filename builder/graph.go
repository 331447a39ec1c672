package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodLattice   = "Lattice"
	methodGeometric = "RandomGeometric"
	minLatticeDim   = 1
	minGeometricN   = 2

	// GeometricSide is the side of the square RandomGeometric samples in.
	GeometricSide = 100.0

	// weightScale rounds generated weights up to three decimals.
	weightScale = 1000.0
)

// Lattice returns a Constructor for a rows×cols grid of positioned vertices
// spaced spacing apart, each linked to its right and lower neighbor with
// weight spacing. Vertex idx = r*cols + c sits at (c*spacing, r*spacing).
// In a directed graph both arcs are added.
func Lattice(rows, cols int, spacing float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minLatticeDim || cols < minLatticeDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodLattice, rows, cols, minLatticeDim, ErrTooFewVertices)
		}
		if !(spacing > 0) || math.IsInf(spacing, 0) {
			return fmt.Errorf("%s: spacing=%g must be positive: %w", methodLattice, spacing, ErrBadSize)
		}
		id := func(r, c int) string { return cfg.idFn(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addPositioned(g, id(r, c), float64(c)*spacing, float64(r)*spacing); err != nil {
					return fmt.Errorf("%s: %w", methodLattice, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, id(r, c), id(r, c+1), spacing); err != nil {
						return fmt.Errorf("%s: %w", methodLattice, err)
					}
				}
				if r+1 < rows {
					if err := link(g, id(r, c), id(r+1, c), spacing); err != nil {
						return fmt.Errorf("%s: %w", methodLattice, err)
					}
				}
			}
		}

		return nil
	}
}

// RandomGeometric returns a Constructor for a random geometric road map:
// n vertices placed uniformly in a GeometricSide square, with every pair
// closer than radius linked. An edge weighs its length times a detour
// factor from WithDetour (default 1), rounded up to three decimals.
// Requires WithSeed or WithRand.
func RandomGeometric(n int, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minGeometricN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodGeometric, n, minGeometricN, ErrTooFewVertices)
		}
		if !(radius > 0) {
			return fmt.Errorf("%s: radius=%g must be positive: %w", methodGeometric, radius, ErrBadSize)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodGeometric, ErrNeedRandSource)
		}

		xs, ys := make([]float64, n), make([]float64, n)
		for i := 0; i < n; i++ {
			xs[i] = cfg.rng.Float64() * GeometricSide
			ys[i] = cfg.rng.Float64() * GeometricSide
			if err := addPositioned(g, cfg.idFn(i), xs[i], ys[i]); err != nil {
				return fmt.Errorf("%s: %w", methodGeometric, err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
				if d > radius {
					continue
				}
				factor := 1.0
				if cfg.detour > 1 {
					factor += cfg.rng.Float64() * (cfg.detour - 1)
				}
				w := math.Ceil(d*factor*weightScale) / weightScale
				if err := link(g, cfg.idFn(i), cfg.idFn(j), w); err != nil {
					return fmt.Errorf("%s: %w", methodGeometric, err)
				}
			}
		}

		return nil
	}
}

func addPositioned(g *core.Graph, id string, x, y float64) error {
	if err := g.AddVertex(id); err != nil {
		return fmt.Errorf("AddVertex(%s): %w", id, err)
	}
	if err := g.SetPosition(id, x, y); err != nil {
		return fmt.Errorf("SetPosition(%s): %w", id, err)
	}

	return nil
}

// link adds u–v, or both arcs when g is directed.
func link(g *core.Graph, u, v string, w float64) error {
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("AddEdge(%s,%s): %w", u, v, err)
	}
	if g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("AddEdge(%s,%s): %w", v, u, err)
		}
	}

	return nil
}
