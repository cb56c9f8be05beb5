// SPDX-License-Identifier: MIT
//
// File: nodes.go
// Role: Node lifecycle & queries: AddNode/DeleteNode/HasNode/Nodes/NodeCount/Degree.
// Determinism:
//   - Nodes() returns ids in insertion order (ascending, ids are monotonic).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"slices"
)

// AddNode allocates the next sequential id, creates a link from every valid
// parent to the new node and rebuilds adjacency. Parents that do not exist,
// and any parent equal to the new id, are skipped silently. Duplicate parent
// ids produce a single link.
//
// weigh decides the weight of each new link; nil creates unweighted links.
//
// Complexity: O(P + V + E).
func (g *Graph) AddNode(parentIDs []int, weigh WeightFn) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextID
	g.nextID++
	g.nodes = append(g.nodes, id)
	g.index[id] = struct{}{}

	seen := make(map[int]struct{}, len(parentIDs))
	for _, pid := range parentIDs {
		if pid == id {
			continue
		}
		if _, ok := g.index[pid]; !ok {
			continue
		}
		if _, dup := seen[pid]; dup {
			continue
		}
		seen[pid] = struct{}{}

		w := Unweighted
		if weigh != nil {
			w = weigh()
		}
		g.links = append(g.links, Link{Source: pid, Target: id, Weight: w})
	}
	g.rebuildAdjacency()

	return id
}

// DeleteNode removes the node and every incident link, then rebuilds adjacency.
// Returns ErrNodeNotFound (and changes nothing) if id is absent.
//
// Complexity: O(V + E).
func (g *Graph) DeleteNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[id]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	delete(g.index, id)
	g.nodes = slices.DeleteFunc(g.nodes, func(n int) bool { return n == id })
	g.links = slices.DeleteFunc(g.links, func(l Link) bool { return l.Touches(id) })
	g.rebuildAdjacency()

	return nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]

	return ok
}

// Nodes returns a copy of all node ids in insertion order.
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.nodes)
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// NextID returns the id the next AddNode call will allocate.
func (g *Graph) NextID() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nextID
}

// Degree returns the number of adjacency entries of id (parallel links count
// once per link). Returns ErrNodeNotFound for unknown ids.
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[id]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return len(g.adjacency[id]), nil
}
