// Package builder provides validation helpers to enforce
// parameter contracts in constructor factories.
//
// Each function returns an error wrapping a package sentinel
// when its precondition is violated.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: ErrParamTooSmall".
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrParamTooSmall, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateFraction enforces f ∈ [MinFraction, MaxFraction].
//
// Complexity: O(1) time and space.
func validateFraction(method string, f float64) error {
	if f < MinFraction || f > MaxFraction {
		return builderErrorf(method, ErrInvalidFraction,
			"fraction must be in [%.1f,%.1f], got %f", MinFraction, MaxFraction, f)
	}

	return nil
}
