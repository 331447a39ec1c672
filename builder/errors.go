package builder

import "errors"

// Sentinel errors. Constructors wrap them with method context via %w;
// callers branch with errors.Is.
var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols, side)
	// below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor called without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrBadSize indicates a non-topological size, such as a negative move
	// count or a non-positive spacing.
	ErrBadSize = errors.New("builder: invalid size")

	// ErrConstructFailed indicates a nil constructor or a construction that
	// could not satisfy its invariants.
	ErrConstructFailed = errors.New("builder: construction failed")
)
