// SPDX-License-Identifier: MIT
package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchlab/builder"
	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/heuristic"
	"github.com/katalvlaran/searchlab/search"
)

// hopDistance is an oracle BFS over adjacency.
func hopDistance(g *core.Graph, from, to int) int {
	adj := g.Adjacency()
	dist := map[int]int{from: 0}
	queue := []int{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == to {
			return dist[u]
		}
		for _, v := range adj[u] {
			if _, ok := dist[v]; !ok {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return -1
}

// pathCost sums first-match link weights along path.
func pathCost(t *testing.T, g *core.Graph, path []int) float64 {
	t.Helper()
	total := 0.0
	for i := 1; i < len(path); i++ {
		w, ok := g.LinkWeight(path[i-1], path[i])
		require.True(t, ok, "path uses missing link %d-%d", path[i-1], path[i])
		total += w.Value
	}
	return total
}

// TestProperty_OptimalPaths checks BFS hop-optimality and UCS/A* cost
// agreement over random connected graphs.
func TestProperty_OptimalPaths(t *testing.T) {
	const n = 14
	for seed := int64(1); seed <= 12; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomConnected(n, true))
		require.NoError(t, err)

		for start := 0; start < n; start += 3 {
			goal := (start + 5 + int(seed)) % n

			bfs, err := search.New(search.BFS, g, start, goal)
			require.NoError(t, err)
			_, bres := runAll(t, bfs)
			require.Equal(t, search.StatusGoalFound, bres.Status)
			assert.Equal(t, hopDistance(g, start, goal), len(bres.Path)-1, "seed=%d %d→%d", seed, start, goal)

			ucs, err := search.New(search.UCS, g, start, goal)
			require.NoError(t, err)
			_, ures := runAll(t, ucs)
			require.Equal(t, search.StatusGoalFound, ures.Status)
			assert.InDelta(t, ures.Cost, pathCost(t, g, ures.Path), 1e-9)

			table, err := heuristic.Compute(g, goal)
			require.NoError(t, err)
			astar, err := search.New(search.AStar, g, start, goal, search.WithHeuristics(table))
			require.NoError(t, err)
			_, ares := runAll(t, astar)
			require.Equal(t, search.StatusGoalFound, ares.Status)
			assert.InDelta(t, ures.Cost, ares.Cost, 1e-9, "seed=%d %d→%d", seed, start, goal)
			assert.LessOrEqual(t, len(ares.Expanded), n)

			dfs, err := search.New(search.DFS, g, start, goal)
			require.NoError(t, err)
			_, dres := runAll(t, dfs)
			require.Equal(t, search.StatusGoalFound, dres.Status)
			assert.Equal(t, start, dres.Path[0])
			assert.Equal(t, goal, dres.Path[len(dres.Path)-1])
		}
	}
}

// TestProperty_FirstDiscoveryParentsStable checks BFS/DFS never rewrite a
// parent once recorded.
func TestProperty_FirstDiscoveryParentsStable(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomConnected(20, false))
	require.NoError(t, err)

	for _, alg := range []search.Algorithm{search.BFS, search.DFS} {
		s, err := search.New(alg, g, 0, core.NoNode)
		require.NoError(t, err)
		events, res := runAll(t, s)
		assert.Equal(t, search.StatusExhausted, res.Status)

		first := map[int]int{}
		for _, ev := range events {
			for child, parent := range ev.Snapshot.Parents() {
				if p, ok := first[child]; ok {
					require.Equal(t, p, parent, "%s rewrote parent of %d", alg, child)
				}
				first[child] = parent
			}
		}
		assert.Len(t, first, 19)
	}
}
