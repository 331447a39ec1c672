package builder

import "math/rand"

// BuilderOption customizes a generator before it runs.
// Option constructors panic on meaningless input; generators never panic.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator for graph constructors.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDetour scales geometric edge weights: an edge weighs its Euclidean
// length times a factor drawn from [1, max]. Weights never drop below the
// straight-line length, so the straight-line heuristic stays consistent.
// Panics if max < 1.
func WithDetour(max float64) BuilderOption {
	if max < 1 {
		panic("builder: WithDetour(max < 1)")
	}
	return func(c *builderConfig) { c.detour = max }
}

// WithMaxCost makes RandomGrid emit terrain costs in [1, k] for open cells
// instead of plain 1. Panics if k < 1.
func WithMaxCost(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithMaxCost(k < 1)")
	}
	return func(c *builderConfig) { c.maxCost = k }
}

// builderConfig is the resolved option set.
type builderConfig struct {
	idFn    IDFn
	rng     *rand.Rand
	detour  float64
	maxCost int
}

const (
	defaultDetour  = 1.0
	defaultMaxCost = 1
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		detour:  defaultDetour,
		maxCost: defaultMaxCost,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
