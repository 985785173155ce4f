// SPDX-License-Identifier: MIT
// Package: metrics
//
// options.go — functional options for Compute.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs
//     (programmer error); Compute itself never panics.
//   • Later options override earlier ones.

package metrics

import (
	"fmt"
	"math"
	"math/rand"
)

// Defaults.
const (
	DefaultRandomTrials = 5
	DefaultThreshold    = 0.0
	// defaultSwapsPerEdge is the number of double-edge swaps per edge used by
	// the degree-preserving null model.
	defaultSwapsPerEdge = 10
)

// NullModel selects how small-world reference graphs are generated.
type NullModel int

const (
	// NullModelUniform places E edges on uniformly random node pairs
	// (attempt budget 10·E). Degree sequence is NOT preserved.
	NullModelUniform NullModel = iota
	// NullModelDegreePreserving rewires the real graph by double-edge swaps,
	// keeping every node degree.
	NullModelDegreePreserving
)

// String implements fmt.Stringer.
func (k NullModel) String() string {
	switch k {
	case NullModelUniform:
		return "uniform"
	case NullModelDegreePreserving:
		return "degree-preserving"
	default:
		return fmt.Sprintf("NullModel(%d)", int(k))
	}
}

// Validate reports whether k is a known null model.
func (k NullModel) Validate() error {
	if k != NullModelUniform && k != NullModelDegreePreserving {
		return fmt.Errorf("%v: %w", k, ErrInvalidOption)
	}

	return nil
}

// ValidateThreshold accepts finite t ≥ 0.
func ValidateThreshold(t float64) error {
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("threshold %g: need finite t ≥ 0: %w", t, ErrInvalidOption)
	}

	return nil
}

// ParseNullModel maps "uniform" / "degree-preserving" to a NullModel.
func ParseNullModel(s string) (NullModel, error) {
	switch s {
	case "", "uniform":
		return NullModelUniform, nil
	case "degree-preserving", "degree_preserving":
		return NullModelDegreePreserving, nil
	default:
		return 0, fmt.Errorf("null model %q: %w", s, ErrInvalidOption)
	}
}

// config aggregates the knobs of one Compute call.
type config struct {
	rng       *rand.Rand
	seed      int64
	trials    int
	threshold float64
	nullModel NullModel
}

// Option customizes Compute.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		trials:    DefaultRandomTrials,
		threshold: DefaultThreshold,
		nullModel: NullModelUniform,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// random returns the caller's RNG or a fresh one seeded from cfg.seed.
func (c config) random() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rngFromSeed(c.seed)
}

// WithSeed seeds the null-model RNG. Seed 0 maps to a fixed default, so runs
// are reproducible unless a seed is chosen explicitly.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand supplies the RNG directly. It must not be used concurrently
// elsewhere while Compute runs. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("metrics: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRandomTrials sets the number of null-model trials (n ≥ 1).
func WithRandomTrials(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("metrics: WithRandomTrials(%d): need n ≥ 1", n))
	}
	return func(c *config) {
		c.trials = n
	}
}

// WithThreshold sets the edge threshold: an edge exists iff weight > t.
// Weights at or below t are dropped before every analysis.
// Panics on negative or non-finite t.
func WithThreshold(t float64) Option {
	if err := ValidateThreshold(t); err != nil {
		panic(fmt.Sprintf("metrics: WithThreshold(%g): need finite t ≥ 0", t))
	}
	return func(c *config) {
		c.threshold = t
	}
}

// WithNullModel selects the small-world reference model. Panics on an unknown kind.
func WithNullModel(kind NullModel) Option {
	if kind.Validate() != nil {
		panic(fmt.Sprintf("metrics: WithNullModel(%v): unknown kind", kind))
	}
	return func(c *config) {
		c.nullModel = kind
	}
}
