// SPDX-License-Identifier: MIT
// Package: rmatrix/builder
//
// options.go - functional options for BuildGraph.
//
// Option constructors validate and panic on meaningless inputs;
// constructors themselves never panic.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a new *rand.Rand seeded with seed. Each BuildGraph call
// gets a fresh source, so reused options rebuild the same graph.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		WithRand(rand.New(rand.NewSource(seed)))(c)
	}
}

// WithWeightFn overrides the per-edge weight generator. The function receives
// the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithWeightRange draws every edge weight uniformly from [min, max].
// Panics with ErrBadWeightRange unless 0 ≤ min ≤ max.
// Without an RNG (no WithSeed/WithRand) every edge gets min.
func WithWeightRange(min, max int64) BuilderOption {
	if min < 0 || max < min {
		panic(fmt.Errorf("builder: WithWeightRange(%d, %d): %w", min, max, ErrBadWeightRange))
	}

	return WithWeightFn(UniformWeightFn(min, max))
}
