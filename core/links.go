// SPDX-License-Identifier: MIT
//
// File: links.go
// Role: Link lifecycle & queries: AddOrUpdateLink/RemoveLink/LinkWeight/Links,
//       weighting predicates used by UCS, A* and the heuristic calculator.
// Determinism:
//   - Links() returns the catalog in insertion order.
//   - Lookups between a pair resolve to the first matching link.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"slices"
)

// AddOrUpdateLink sets the weight of every existing link between a and b
// (w may be Unweighted, which clears it), or creates a new link when none
// exists. It reports whether a link was created.
//
// Errors: ErrSelfLink when a == b; ErrNodeNotFound when an endpoint is absent.
// On error the graph is unchanged.
//
// Complexity: O(E), plus O(V+E) adjacency rebuild on creation.
func (g *Graph) AddOrUpdateLink(a, b int, w Weight) (bool, error) {
	if a == b {
		return false, fmt.Errorf("%w: %d", ErrSelfLink, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.requireNodes(a, b); err != nil {
		return false, err
	}

	found := false
	for i := range g.links {
		if g.links[i].Connects(a, b) {
			g.links[i].Weight = w
			found = true
		}
	}
	if found {
		return false, nil
	}

	g.links = append(g.links, Link{Source: a, Target: b, Weight: w})
	g.rebuildAdjacency()

	return true, nil
}

// RemoveLink deletes the first link between a and b. It returns true if a
// link was removed and false if none existed.
//
// Complexity: O(V + E).
func (g *Graph) RemoveLink(a, b int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := slices.IndexFunc(g.links, func(l Link) bool { return l.Connects(a, b) })
	if idx < 0 {
		return false
	}
	g.links = slices.Delete(g.links, idx, idx+1)
	g.rebuildAdjacency()

	return true
}

// LinkWeight returns the weight of the first link between a and b.
// ok is false when the nodes are not linked.
func (g *Graph) LinkWeight(a, b int) (w Weight, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, l := range g.links {
		if l.Connects(a, b) {
			return l.Weight, true
		}
	}

	return Unweighted, false
}

// Links returns a copy of the link catalog in insertion order.
func (g *Graph) Links() []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.links)
}

// LinkCount returns |E|.
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.links)
}

// FullyWeighted reports whether every link carries a weight.
// A graph without links is trivially fully weighted.
func (g *Graph) FullyWeighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, l := range g.links {
		if !l.Weight.Valid {
			return false
		}
	}

	return true
}

// MinWeight returns the smallest link weight. ok is false when the graph has
// no links or at least one link is unweighted.
func (g *Graph) MinWeight() (lowest float64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.links) == 0 {
		return 0, false
	}
	lowest = math.Inf(1)
	for _, l := range g.links {
		if !l.Weight.Valid {
			return 0, false
		}
		lowest = math.Min(lowest, l.Weight.Value)
	}

	return lowest, true
}

// requireNodes returns ErrNodeNotFound for the first absent id.
// Caller must hold mu.
func (g *Graph) requireNodes(ids ...int) error {
	for _, id := range ids {
		if _, ok := g.index[id]; !ok {
			return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
		}
	}

	return nil
}
