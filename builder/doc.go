// Package builder provides "functional-options"-style graph generators that
// populate a core.Graph. It centralizes randomness, weight distributions and
// parameter validation so every generator stays deterministic for a fixed seed.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds the RNG, the weight function and degree limits.
//   - Constructors:
//     – RandomConnected(n, weighted): a connected graph over ids 0..n-1 built
//     from a random spanning tree plus a degree-bounded augmentation pass.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:    constant DefaultEdgeWeight.
//     – ConstantWeightFn:   fixed user-provided value.
//     – UniformIntWeightFn: uniform integer in [lo, hi].
//     – LinkWeights:        adapts a WeightFn to core.WeightFn for AddNode.
//   - Validation helpers: validateMin (degree limit), validateFraction.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping package sentinels (errors.Is friendly).
//   - A constructor either replaces the graph content completely or leaves it
//     untouched; partial graphs are never observable.
//
// See individual function documentation for complexity and determinism notes.
package builder
