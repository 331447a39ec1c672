package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Board is an immutable n×n tile arrangement. It is a comparable value:
// == and map hashing depend on the side and tile contents only. Cells past
// n² are always zero.
type Board struct {
	side  uint8
	tiles [maxCells]uint8
}

// NewBoard builds a Board from square rows holding each of 0..n²-1 once,
// 0 being the blank.
// Returns ErrBadSide, ErrNonSquare or ErrNotPermutation on invalid input.
func NewBoard(rows [][]int) (Board, error) {
	n := len(rows)
	if n < MinSide || n > MaxSide {
		return Board{}, fmt.Errorf("%w: %d not in [%d,%d]", ErrBadSide, n, MinSide, MaxSide)
	}
	var b Board
	b.side = uint8(n)
	var seen [maxCells]bool
	for r, row := range rows {
		if len(row) != n {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r, len(row), n)
		}
		for c, v := range row {
			if v < 0 || v >= n*n || seen[v] {
				return Board{}, fmt.Errorf("%w: tile %d at (%d,%d)", ErrNotPermutation, v, r, c)
			}
			seen[v] = true
			b.tiles[r*n+c] = uint8(v)
		}
	}

	return b, nil
}

// Goal returns the canonical solved board of the given side: 1..n²-1 in
// row-major order with the blank last.
func Goal(side int) (Board, error) {
	if side < MinSide || side > MaxSide {
		return Board{}, fmt.Errorf("%w: %d not in [%d,%d]", ErrBadSide, side, MinSide, MaxSide)
	}
	b := Board{side: uint8(side)}
	cells := side * side
	for i := 0; i < cells-1; i++ {
		b.tiles[i] = uint8(i + 1)
	}

	return b, nil
}

// Side returns n for an n×n board, or 0 for the zero Board.
func (b Board) Side() int { return int(b.side) }

// At returns the tile at row r, column c.
func (b Board) At(r, c int) int { return int(b.tiles[r*int(b.side)+c]) }

// Blank returns the row and column of the empty cell.
func (b Board) Blank() (r, c int) {
	n := int(b.side)
	for i := 0; i < n*n; i++ {
		if b.tiles[i] == Blank {
			return i / n, i % n
		}
	}

	return -1, -1
}

// Rows returns the board as a fresh [][]int.
func (b Board) Rows() [][]int {
	n := int(b.side)
	rows := make([][]int, n)
	for r := range rows {
		rows[r] = make([]int, n)
		for c := range rows[r] {
			rows[r][c] = b.At(r, c)
		}
	}

	return rows
}

// Move slides the blank one cell in direction d.
// ok is false when the move would leave the board.
func (b Board) Move(d Direction) (next Board, ok bool) {
	for _, mv := range directions {
		if mv.dir == d {
			return b.shift(mv.dr, mv.dc)
		}
	}

	return b, false
}

// Moves returns every board one blank swap away, in Up, Down, Left, Right order.
func (b Board) Moves() []Board {
	out := make([]Board, 0, len(directions))
	for _, mv := range directions {
		if next, ok := b.shift(mv.dr, mv.dc); ok {
			out = append(out, next)
		}
	}

	return out
}

func (b Board) shift(dr, dc int) (Board, bool) {
	n := int(b.side)
	r, c := b.Blank()
	nr, nc := r+dr, c+dc
	if r < 0 || nr < 0 || nr >= n || nc < 0 || nc >= n {
		return b, false
	}
	from, to := r*n+c, nr*n+nc
	b.tiles[from], b.tiles[to] = b.tiles[to], b.tiles[from]

	return b, true
}

// String renders rows separated by '/', the blank as '_': "1 2 3/4 5 6/7 _ 8".
func (b Board) String() string {
	n := int(b.side)
	var sb strings.Builder
	for i := 0; i < n*n; i++ {
		switch {
		case i == 0:
		case i%n == 0:
			sb.WriteByte('/')
		default:
			sb.WriteByte(' ')
		}
		if b.tiles[i] == Blank {
			sb.WriteByte('_')
		} else {
			sb.WriteString(strconv.Itoa(int(b.tiles[i])))
		}
	}

	return sb.String()
}

// positions maps each tile value to its cell index on b.
func (b Board) positions() [maxCells]uint8 {
	var pos [maxCells]uint8
	n := int(b.side)
	for i := 0; i < n*n; i++ {
		pos[b.tiles[i]] = uint8(i)
	}

	return pos
}

// MisplacedTiles counts non-blank tiles of b that are not where goal has them.
func MisplacedTiles(b, goal Board) int {
	n := int(b.side)
	count := 0
	for i := 0; i < n*n; i++ {
		if b.tiles[i] != Blank && b.tiles[i] != goal.tiles[i] {
			count++
		}
	}

	return count
}

// ManhattanDistance sums, over non-blank tiles, the row plus column distance
// between their cell on b and their cell on goal.
func ManhattanDistance(b, goal Board) int {
	return manhattan(b, goal.positions())
}

func manhattan(b Board, goalPos [maxCells]uint8) int {
	n := int(b.side)
	sum := 0
	for i := 0; i < n*n; i++ {
		t := b.tiles[i]
		if t == Blank {
			continue
		}
		g := int(goalPos[t])
		sum += abs(i/n-g/n) + abs(i%n-g%n)
	}

	return sum
}

// Solvable reports whether goal is reachable from start. Every move is a
// transposition with the blank that also moves the blank by one cell, so
// the permutation parity from start to goal must equal the parity of the
// blank's grid distance.
func Solvable(start, goal Board) bool {
	if start.side != goal.side || start.side == 0 {
		return false
	}
	n := int(start.side)
	cells := n * n
	goalPos := goal.positions()

	var visited [maxCells]bool
	cycles := 0
	for i := 0; i < cells; i++ {
		if visited[i] {
			continue
		}
		cycles++
		for j := i; !visited[j]; j = int(goalPos[start.tiles[j]]) {
			visited[j] = true
		}
	}
	permParity := (cells - cycles) % 2

	sr, sc := start.Blank()
	gr, gc := goal.Blank()
	blankParity := (abs(sr-gr) + abs(sc-gc)) % 2

	return permParity == blankParity
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
