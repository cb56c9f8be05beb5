// SPDX-License-Identifier: MIT
package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/search"
)

// diamond builds 0-1(1), 0-2(5), 1-3(5), 2-3(2).
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	return linked(t, 4,
		core.Link{Source: 0, Target: 1, Weight: core.W(1)},
		core.Link{Source: 0, Target: 2, Weight: core.W(5)},
		core.Link{Source: 1, Target: 3, Weight: core.W(5)},
		core.Link{Source: 2, Target: 3, Weight: core.W(2)},
	)
}

// linked builds a graph over ids 0..n-1 with the given links in order.
func linked(t *testing.T, n int, links ...core.Link) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.Replace(n, links))
	return g
}

// runAll drives s to completion and returns every message plus the result.
func runAll(t *testing.T, s search.Stepper) ([]search.Event, search.Result) {
	t.Helper()
	var events []search.Event
	res, err := search.Drive(context.Background(), s, func(ev search.Event) {
		events = append(events, ev)
	})
	require.NoError(t, err)
	return events, res
}

func messages(events []search.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Message
	}
	return out
}
