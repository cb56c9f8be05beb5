// SPDX-License-Identifier: MIT
//
// File: clone.go
// Role: Whole-graph operations: Clone, Clear, Replace.
// Determinism:
//   - Clone carries nextID so ids allocated on the clone continue the sequence.
// Concurrency:
//   - Clone takes the source read lock only; the result is a fresh instance.

package core

import (
	"fmt"
	"slices"
)

// Clone returns a deep copy: nodes, links, adjacency and the id counter.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		nextID:    g.nextID,
		nodes:     slices.Clone(g.nodes),
		index:     make(map[int]struct{}, len(g.index)),
		links:     slices.Clone(g.links),
		adjacency: cloneAdjacency(g.adjacency),
	}
	for id := range g.index {
		out.index[id] = struct{}{}
	}

	return out
}

// Clear removes every node and link and resets the id counter to zero.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextID = 0
	g.nodes = nil
	g.index = make(map[int]struct{})
	g.links = nil
	g.adjacency = make(map[int][]int)
}

// Replace swaps the whole content for nodes 0..n-1 joined by links, and sets
// the id counter to n. n < 1 clears the graph. Links referencing ids outside
// [0,n) or joining a node to itself are rejected and leave g unchanged.
//
// Complexity: O(V + E).
func (g *Graph) Replace(n int, links []Link) error {
	if n < 1 {
		g.Clear()

		return nil
	}
	for _, l := range links {
		if l.Source == l.Target {
			return fmt.Errorf("%w: %d", ErrSelfLink, l.Source)
		}
		for _, id := range [...]int{l.Source, l.Target} {
			if id < 0 || id >= n {
				return fmt.Errorf("%w: %d (graph has %d nodes)", ErrNodeNotFound, id, n)
			}
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextID = n
	g.nodes = make([]int, n)
	g.index = make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		g.nodes[i] = i
		g.index[i] = struct{}{}
	}
	g.links = slices.Clone(links)
	g.rebuildAdjacency()

	return nil
}
