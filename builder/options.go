// SPDX-License-Identifier: MIT
// Package: Easy-Graph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   - Seeding is explicit, via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> label. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders and weight
// distributions. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithWeightKey sets the edge attribute key weights are written under.
// Panics on "".
func WithWeightKey(key string) BuilderOption {
	if key == "" {
		panic("builder: WithWeightKey(\"\")")
	}

	return func(c *builderConfig) { c.weightKey = key }
}
