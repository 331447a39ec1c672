// Package puzzle defines sentinel errors, heuristics and move directions
// for the sliding-tile adapter.
package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for board construction and problem setup.
var (
	// ErrBadSide indicates a board side outside [MinSide, MaxSide].
	ErrBadSide = errors.New("puzzle: board side out of range")

	// ErrNonSquare indicates a row whose length differs from the number of rows.
	ErrNonSquare = errors.New("puzzle: board must be square")

	// ErrNotPermutation indicates tiles that are not exactly 0..n²-1.
	ErrNotPermutation = errors.New("puzzle: tiles must be a permutation of 0..n²-1")

	// ErrSideMismatch indicates start and goal boards of different sizes.
	ErrSideMismatch = errors.New("puzzle: start and goal sides differ")

	// ErrUnknownHeuristic indicates a heuristic outside the supported set.
	ErrUnknownHeuristic = errors.New("puzzle: unknown heuristic")
)

const (
	// MinSide is the smallest supported board side (3-puzzle).
	MinSide = 2
	// MaxSide is the largest supported board side (15-puzzle).
	MaxSide = 4
	// Blank is the tile value of the empty cell.
	Blank = 0

	maxCells = MaxSide * MaxSide
)

// Heuristic selects the remaining-cost estimate used by informed search.
type Heuristic int

const (
	// Zero estimates nothing; A* then behaves like UCS.
	Zero Heuristic = iota
	// Misplaced counts non-blank tiles not on their goal cell.
	Misplaced
	// Manhattan sums the grid distance of every non-blank tile to its goal cell.
	Manhattan
)

// String returns the heuristic name.
func (h Heuristic) String() string {
	switch h {
	case Zero:
		return "zero"
	case Misplaced:
		return "misplaced"
	case Manhattan:
		return "manhattan"
	default:
		return fmt.Sprintf("heuristic(%d)", int(h))
	}
}

// ParseHeuristic maps "zero", "misplaced"/"h1" and "manhattan"/"h2" to a Heuristic.
func ParseHeuristic(name string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "zero", "none":
		return Zero, nil
	case "misplaced", "h1":
		return Misplaced, nil
	case "manhattan", "h2":
		return Manhattan, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// Direction is the displacement of the blank cell.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// directions lists moves in generation order with their (row, col) deltas.
var directions = [...]struct {
	dir    Direction
	dr, dc int
}{
	{Up, -1, 0},
	{Down, 1, 0},
	{Left, 0, -1},
	{Right, 0, 1},
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}
