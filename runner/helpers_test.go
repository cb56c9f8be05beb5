// SPDX-License-Identifier: MIT
package runner_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/search"
)

// diamond builds 0-1(1), 0-2(5), 1-3(5), 2-3(2).
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.Replace(4, []core.Link{
		{Source: 0, Target: 1, Weight: core.W(1)},
		{Source: 0, Target: 2, Weight: core.W(5)},
		{Source: 1, Target: 3, Weight: core.W(5)},
		{Source: 2, Target: 3, Weight: core.W(2)},
	}))
	return g
}

func stepper(t *testing.T, alg search.Algorithm, g *core.Graph, start, goal int) search.Stepper {
	t.Helper()
	s, err := search.New(alg, g, start, goal)
	require.NoError(t, err)
	return s
}

// expected drives a fresh stepper synchronously and returns its messages.
func expected(t *testing.T, alg search.Algorithm, g *core.Graph, start, goal int) []string {
	t.Helper()
	var out []string
	_, err := search.Drive(context.Background(), stepper(t, alg, g, start, goal), func(ev search.Event) {
		out = append(out, ev.Message)
	})
	require.NoError(t, err)
	return out
}

// recorder collects hook deliveries.
type recorder struct {
	mu       sync.Mutex
	steps    []string
	logs     []string
	outcomes []runnerOutcome
}

type runnerOutcome struct {
	status search.Status
	steps  int
	err    error
}
