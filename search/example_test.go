package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/search"
)

// ExampleDrive runs UCS on a four-node diamond and prints each step.
func ExampleDrive() {
	g := core.NewGraph()
	_ = g.Replace(4, []core.Link{
		{Source: 0, Target: 1, Weight: core.W(1)},
		{Source: 0, Target: 2, Weight: core.W(5)},
		{Source: 1, Target: 3, Weight: core.W(5)},
		{Source: 2, Target: 3, Weight: core.W(2)},
	})

	s, err := search.New(search.UCS, g, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, _ := search.Drive(context.Background(), s, func(ev search.Event) {
		fmt.Println(ev.Message)
	})
	fmt.Println(res.Status, res.Path, res.Cost)
	// Output:
	// UCS: Expanding node [0] with cost 0.
	// UCS: Found node [1], Updating cost from none to 1.
	// UCS: Found node [2], Updating cost from none to 5.
	// UCS: Expanding node [1] with cost 1.
	// UCS: Found node [3], Updating cost from none to 6.
	// UCS: Expanding node [2] with cost 5.
	// UCS: Expanding node [3] with cost 6.
	// UCS: Goal node [3] reached! Path: 0 -> 1 -> 3, Total cost: 6.
	// goal_found [0 1 3] 6
}
