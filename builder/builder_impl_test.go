// File: builder_impl_test.go
// Package builder_test contains functional tests for RandomConnected,
// verifying connectivity, degree bounds, weights and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchlab/builder"
	"github.com/katalvlaran/searchlab/core"
)

// reachableFrom returns the set of nodes reachable from src by adjacency.
func reachableFrom(g *core.Graph, src int) map[int]bool {
	adj := g.Adjacency()
	seen := map[int]bool{src: true}
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// TestRandomConnected_Properties checks the generator bounds over many seeds and sizes.
func TestRandomConnected_Properties(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 40; n++ {
		for seed := int64(0); seed < 15; seed++ {
			g, err := builder.BuildGraph(
				[]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomConnected(n, true),
			)
			require.NoError(t, err)
			require.Equal(t, n, g.NodeCount())
			require.Equal(t, n, g.NextID())

			assert.Len(t, reachableFrom(g, 0), n, "n=%d seed=%d: not connected", n, seed)

			deg3 := 0
			for _, id := range g.Nodes() {
				d, err := g.Degree(id)
				require.NoError(t, err)
				require.LessOrEqual(t, d, 3, "n=%d seed=%d node=%d", n, seed, id)
				if d == 3 {
					deg3++
				}
			}
			assert.LessOrEqual(t, float64(deg3)/float64(n), 0.2, "n=%d seed=%d", n, seed)

			for _, l := range g.Links() {
				require.True(t, l.Weight.Valid)
				require.GreaterOrEqual(t, l.Weight.Value, 1.0)
				require.LessOrEqual(t, l.Weight.Value, 20.0)
				require.Equal(t, l.Weight.Value, float64(int(l.Weight.Value)))
			}
		}
	}
}

// TestRandomConnected_NoDuplicateLinks ensures augmentation never doubles a tree link.
func TestRandomConnected_NoDuplicateLinks(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(9)}, builder.RandomConnected(30, false))
	require.NoError(t, err)

	seen := make(map[[2]int]bool)
	for _, l := range g.Links() {
		key := [2]int{min(l.Source, l.Target), max(l.Source, l.Target)}
		require.False(t, seen[key], "duplicate link %v", key)
		seen[key] = true
		assert.False(t, l.Weight.Valid, "unweighted build produced a weight")
	}
	assert.GreaterOrEqual(t, g.LinkCount(), 29)
}

// TestRandomConnected_Deterministic verifies identical output for identical seeds.
func TestRandomConnected_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() []core.Link {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(2024)}, builder.RandomConnected(12, true))
		require.NoError(t, err)
		return g.Links()
	}
	assert.Equal(t, build(), build())
}

// TestRandomConnected_ClearsOnNonPositive verifies n < 1 empties an existing graph.
func TestRandomConnected_ClearsOnNonPositive(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	g.AddNode(nil, nil)
	g.AddNode([]int{0}, nil)

	require.NoError(t, builder.Apply(g, builder.RandomConnected(0, true)))
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.LinkCount())
	assert.Equal(t, 0, g.NextID())
}

// TestRandomConnected_Errors covers the error surface.
func TestRandomConnected_Errors(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	g.AddNode(nil, nil)

	err := builder.Apply(g, builder.RandomConnected(5, true))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	assert.Equal(t, 1, g.NodeCount(), "failed build must leave graph untouched")

	err = builder.Apply(nil, builder.RandomConnected(5, true), builder.WithSeed(1))
	assert.ErrorIs(t, err, core.ErrGraphNil)

	err = builder.Apply(g, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestRandomConnected_CustomDegreeLimit exercises WithDegreeLimit.
func TestRandomConnected_CustomDegreeLimit(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithDegreeLimit(4, 0.5)},
		builder.RandomConnected(25, true),
	)
	require.NoError(t, err)
	atCap := 0
	for _, id := range g.Nodes() {
		d, _ := g.Degree(id)
		require.LessOrEqual(t, d, 4)
		if d == 4 {
			atCap++
		}
	}
	assert.LessOrEqual(t, atCap, 12)
	assert.Len(t, reachableFrom(g, 0), 25)
}
