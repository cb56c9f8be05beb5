// SPDX-License-Identifier: MIT
//
// File: heuristic.go
// Role: hop-count × minimum-weight heuristic towards a goal.
// Determinism:
//   - Pure function of the graph content and goal.
// Concurrency:
//   - Works on a Clone of g; g may be mutated concurrently.

package heuristic

import (
	"fmt"

	"github.com/katalvlaran/searchlab/core"
)

// sweep holds the per-call state of the backward BFS.
type sweep struct {
	adj   map[int][]int
	hops  map[int]int
	queue []int
}

// Compute returns the heuristic table for goal over g.
//
// h(v) = hops(v, goal) × minWeight when v reaches goal and every link is
// weighted; h(v) = 0 otherwise.
//
// Errors: core.ErrGraphNil for nil g, ErrGoalNotFound when goal is absent.
// Complexity: O(V + E).
func Compute(g *core.Graph, goal int) (Table, error) {
	if g == nil {
		return Table{}, core.ErrGraphNil
	}
	snap := g.Clone()
	if !snap.HasNode(goal) {
		return Table{}, fmt.Errorf("%w: %d", ErrGoalNotFound, goal)
	}

	nodes := snap.Nodes()
	table := Table{Goal: goal, Values: make(map[int]float64, len(nodes))}

	scale, weighted := snap.MinWeight()
	if !weighted {
		for _, id := range nodes {
			table.Values[id] = 0
		}

		return table, nil
	}

	hops := HopCounts(snap, goal)
	for _, id := range nodes {
		d, reachable := hops[id]
		if !reachable {
			table.Values[id] = 0
			continue
		}
		table.Values[id] = float64(d) * scale
	}

	return table, nil
}

// HopCounts returns the unweighted hop distance from every node that can
// reach goal. Unreachable nodes are absent from the result.
// Complexity: O(V + E).
func HopCounts(g *core.Graph, goal int) map[int]int {
	s := &sweep{
		adj:  g.Adjacency(),
		hops: make(map[int]int),
	}
	if _, ok := s.adj[goal]; !ok {
		return s.hops
	}
	s.hops[goal] = 0
	s.queue = append(s.queue, goal)
	s.loop()

	return s.hops
}

// loop drains the queue, assigning hop+1 to every unseen neighbor.
func (s *sweep) loop() {
	for len(s.queue) > 0 {
		u := s.queue[0]
		s.queue = s.queue[1:]
		for _, v := range s.adj[u] {
			if _, seen := s.hops[v]; seen {
				continue
			}
			s.hops[v] = s.hops[u] + 1
			s.queue = append(s.queue, v)
		}
	}
}
