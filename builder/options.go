// SPDX-License-Identifier: MIT
// Package: searchlab/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-link weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithDegreeLimit sets the maximum node degree and the fraction of nodes that
// may reach it. Panics if maxDegree < MinMaxDegree or the fraction lies
// outside [0,1].
func WithDegreeLimit(maxDegree int, fraction float64) BuilderOption {
	if err := validateMin(MethodRandomConnected, maxDegree, MinMaxDegree); err != nil {
		panic("builder: WithDegreeLimit(" + err.Error() + ")")
	}
	if err := validateFraction(MethodRandomConnected, fraction); err != nil {
		panic("builder: WithDegreeLimit(" + err.Error() + ")")
	}
	return func(c *builderConfig) {
		c.maxDegree, c.maxDegreeRatio = maxDegree, fraction
	}
}
