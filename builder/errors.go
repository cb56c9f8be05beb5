// SPDX-License-Identifier: MIT
// Package: searchlab/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrParamTooSmall indicates that a numeric parameter, such as the degree
// limit, is smaller than the allowed minimum.
var ErrParamTooSmall = errors.New("builder: parameter too small")

// ErrInvalidFraction indicates a ratio outside the closed interval [0,1].
var ErrInvalidFraction = errors.New("builder: fraction out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not produce a topology
// (nil graph, nil constructor, or a rejected core mutation).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
