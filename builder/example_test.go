package builder_test

import (
	"fmt"

	"github.com/katalvlaran/searchlab/builder"
)

// ExampleRandomConnected builds a reproducible weighted graph.
func ExampleRandomConnected() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomConnected(10, true),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("nodes:", g.NodeCount(), "connected links ≥ 9:", g.LinkCount() >= 9, "weighted:", g.FullyWeighted())
	// Output:
	// nodes: 10 connected links ≥ 9: true weighted: true
}
