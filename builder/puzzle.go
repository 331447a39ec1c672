package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/puzzle"
)

const methodScramble = "Scramble"

var opposite = map[puzzle.Direction]puzzle.Direction{
	puzzle.Up:    puzzle.Down,
	puzzle.Down:  puzzle.Up,
	puzzle.Left:  puzzle.Right,
	puzzle.Right: puzzle.Left,
}

// Scramble returns a board reached from the canonical goal of the given
// side by a random walk of moves blank moves that never immediately undoes
// the previous one. The result is always solvable in at most moves moves.
// Requires WithSeed or WithRand unless moves is 0.
func Scramble(side, moves int, opts ...BuilderOption) (puzzle.Board, error) {
	cfg := newBuilderConfig(opts...)
	b, err := puzzle.Goal(side)
	if err != nil {
		return puzzle.Board{}, fmt.Errorf("%s: %w", methodScramble, err)
	}
	if moves < 0 {
		return puzzle.Board{}, fmt.Errorf("%s: moves=%d: %w", methodScramble, moves, ErrBadSize)
	}
	if moves > 0 && cfg.rng == nil {
		return puzzle.Board{}, fmt.Errorf("%s: %w", methodScramble, ErrNeedRandSource)
	}

	dirs := []puzzle.Direction{puzzle.Up, puzzle.Down, puzzle.Left, puzzle.Right}
	last, haveLast := puzzle.Direction(0), false
	legal := make([]puzzle.Board, 0, len(dirs))
	taken := make([]puzzle.Direction, 0, len(dirs))
	for i := 0; i < moves; i++ {
		legal, taken = legal[:0], taken[:0]
		for _, d := range dirs {
			if haveLast && d == opposite[last] {
				continue
			}
			if next, ok := b.Move(d); ok {
				legal = append(legal, next)
				taken = append(taken, d)
			}
		}
		k := cfg.rng.Intn(len(legal))
		b, last, haveLast = legal[k], taken[k], true
	}

	return b, nil
}
