// SPDX-License-Identifier: MIT
//
// File: accessors.go
// Role: copy-returning read accessors.

package snapshot

import (
	"maps"
	"slices"

	"github.com/katalvlaran/searchlab/core"
)

// Nodes returns the node overlays in capture order.
func (s *Snapshot) Nodes() []NodeState { return slices.Clone(s.nodes) }

// Node returns the overlay of id; ok is false if id was not captured.
func (s *Snapshot) Node(id int) (NodeState, bool) {
	i, ok := s.index[id]
	if !ok {
		return NodeState{}, false
	}

	return s.nodes[i], true
}

// Links returns the captured links with their weights.
func (s *Snapshot) Links() []core.Link { return slices.Clone(s.links) }

// Adjacency returns the captured adjacency list.
func (s *Snapshot) Adjacency() map[int][]int { return cloneAdjacency(s.adjacency) }

// Parents returns the captured parent pointers (child → parent).
func (s *Snapshot) Parents() map[int]int { return maps.Clone(s.parents) }

// Parent returns the recorded parent of id.
func (s *Snapshot) Parent(id int) (int, bool) {
	p, ok := s.parents[id]

	return p, ok
}

// Highlighted returns the highlighted node ids.
func (s *Snapshot) Highlighted() []int { return slices.Clone(s.highlighted) }

// Start returns the start node of the run.
func (s *Snapshot) Start() int { return s.start }

// Goal returns the goal id, or core.NoNode when no goal was set.
func (s *Snapshot) Goal() int { return s.goal }

// HasGoal reports whether a goal was set.
func (s *Snapshot) HasGoal() bool { return s.goal != core.NoNode }

// Path returns the reconstructed path, or nil when none was found yet.
func (s *Snapshot) Path() []int { return slices.Clone(s.path) }

// HasPath reports whether the snapshot carries a path.
func (s *Snapshot) HasPath() bool { return s.path != nil }

// Message returns the step message the snapshot was captured with.
func (s *Snapshot) Message() string { return s.message }

// Expanded returns the expanded node ids in expansion order.
func (s *Snapshot) Expanded() []int { return slices.Clone(s.expanded) }

// Current returns the node being processed, or core.NoNode.
func (s *Snapshot) Current() int { return s.current }

// HasCurrent reports whether a node was being processed.
func (s *Snapshot) HasCurrent() bool { return s.current != core.NoNode }
