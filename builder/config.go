// SPDX-License-Identifier: MIT
// Package: searchlab/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng            = nil    (stochastic builders require one)
//   • weightFn       = UniformIntWeightFn(1,20)
//   • maxDegree      = 3
//   • maxDegreeRatio = 0.20

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for links; used only when the constructor is weighted.
	weightFn WeightFn

	// Degree limits for RandomConnected.
	maxDegree      int     // no node may exceed this degree
	maxDegreeRatio float64 // fraction of nodes allowed to sit at maxDegree
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultMaxDegree      = 3
	defaultMaxDegreeRatio = 0.20
	defaultWeightLo       = 1
	defaultWeightHi       = 20
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:            nil,
		weightFn:       UniformIntWeightFn(defaultWeightLo, defaultWeightHi),
		maxDegree:      defaultMaxDegree,
		maxDegreeRatio: defaultMaxDegreeRatio,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
