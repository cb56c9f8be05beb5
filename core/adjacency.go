// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: Derived adjacency list: rebuild from links, neighbor queries, copies.
// Determinism:
//   - Neighbor order equals link insertion order; both directions appended per link.

package core

import (
	"fmt"
	"slices"
)

// rebuildAdjacency recomputes adjacency from scratch so it always mirrors
// the link catalog. Every node gets an entry, even when isolated.
// Caller must hold the write lock.
func (g *Graph) rebuildAdjacency() {
	adj := make(map[int][]int, len(g.nodes))
	for _, id := range g.nodes {
		adj[id] = []int{}
	}
	for _, l := range g.links {
		adj[l.Source] = append(adj[l.Source], l.Target)
		adj[l.Target] = append(adj[l.Target], l.Source)
	}
	g.adjacency = adj
}

// Neighbors returns a copy of id's neighbor list in adjacency order.
// Returns ErrNodeNotFound for unknown ids.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return slices.Clone(g.adjacency[id]), nil
}

// Adjacency returns a deep copy of the whole adjacency list.
func (g *Graph) Adjacency() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return cloneAdjacency(g.adjacency)
}

func cloneAdjacency(src map[int][]int) map[int][]int {
	out := make(map[int][]int, len(src))
	for id, nbrs := range src {
		out[id] = slices.Clone(nbrs)
	}

	return out
}
