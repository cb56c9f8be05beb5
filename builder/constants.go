// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandomConnected is the canonical name for the RandomConnected constructor.
	MethodRandomConnected = "RandomConnected"
	// MethodBuildGraph is the canonical name for the BuildGraph entry point.
	MethodBuildGraph = "BuildGraph"
)

//-----------------------------------------------------------------------------
// Limits
//-----------------------------------------------------------------------------

// MinMaxDegree is the smallest degree limit RandomConnected accepts. Below it
// the degree-capped spanning tree cannot always find a free attachment point.
const MinMaxDegree = 3

// MinFraction and MaxFraction bound ratio parameters, inclusive.
const (
	MinFraction = 0.0
	MaxFraction = 1.0
)

//-----------------------------------------------------------------------------
// Default Weights
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the weight produced by DefaultWeightFn.
const DefaultEdgeWeight float64 = 1
