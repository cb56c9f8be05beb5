// Package builder provides internal helper functions and types
// for configuring link-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/searchlab/core"
)

// WeightFn produces a link weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformIntWeightFn returns a WeightFn sampling an integer uniformly in
// [lo, hi] inclusive. Panics if lo < 0 or hi < lo.
// If rng is nil, yields lo to maintain a deterministic fallback.
func UniformIntWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformIntWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// LinkWeights adapts fn to the core.WeightFn shape consumed by
// core.Graph.AddNode, drawing from rng on every call. A nil fn yields nil,
// which core interprets as "create unweighted links".
func LinkWeights(fn WeightFn, rng *rand.Rand) core.WeightFn {
	if fn == nil {
		return nil
	}

	return func() core.Weight {
		return core.W(fn(rng))
	}
}
