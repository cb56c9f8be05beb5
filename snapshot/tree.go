// SPDX-License-Identifier: MIT
//
// File: tree.go
// Role: search-tree reconstruction and summary statistics.
// Determinism:
//   - Siblings are ordered by discovery index, undiscovered last, then by id.

package snapshot

import (
	"cmp"
	"slices"
)

// TreeNode is one vertex of the discovered search tree.
type TreeNode struct {
	ID int
	// DiscoveryIndex is -1 when the node carries none.
	DiscoveryIndex int
	Children       []*TreeNode
}

// Tree rebuilds the search tree rooted at the snapshot's start node from the
// parent pointers. Parent cycles are cut at the first repeated node.
// Complexity: O(V log V).
func (s *Snapshot) Tree() *TreeNode {
	children := make(map[int][]int, len(s.parents))
	for child, parent := range s.parents {
		children[parent] = append(children[parent], child)
	}

	seen := make(map[int]bool, len(s.parents)+1)
	var build func(id int) *TreeNode
	build = func(id int) *TreeNode {
		seen[id] = true
		node := &TreeNode{ID: id, DiscoveryIndex: s.discoveryIndex(id)}
		kids := children[id]
		slices.SortFunc(kids, s.compareDiscovery)
		for _, kid := range kids {
			if seen[kid] {
				continue
			}
			node.Children = append(node.Children, build(kid))
		}

		return node
	}

	return build(s.start)
}

func (s *Snapshot) discoveryIndex(id int) int {
	if ns, ok := s.Node(id); ok && ns.Discovered {
		return ns.DiscoveryIndex
	}

	return -1
}

// compareDiscovery orders ids by discovery index with undiscovered ids last,
// breaking ties by id.
func (s *Snapshot) compareDiscovery(a, b int) int {
	da, db := s.discoveryIndex(a), s.discoveryIndex(b)
	switch {
	case da < 0 && db >= 0:
		return 1
	case db < 0 && da >= 0:
		return -1
	case da != db:
		return cmp.Compare(da, db)
	}

	return cmp.Compare(a, b)
}

// Stats summarizes a snapshot's search tree. Has* flags mark values that are
// not applicable (no current node, no path).
type Stats struct {
	NodesExpanded   int
	NodesDiscovered int

	CurrentDepth int
	HasDepth     bool

	StepsToGoal int
	HasSteps    bool

	FinalCost    float64
	HasFinalCost bool
}

// Stats computes the tree statistics of s.
//
//   - NodesExpanded:   number of expanded entries.
//   - NodesDiscovered: distinct nodes with a parent, plus the start node.
//   - CurrentDepth:    parent-chain length from the current node.
//   - StepsToGoal:     len(path)-1 when a path exists.
//   - FinalCost:       the goal's recorded cost when a path exists.
func (s *Snapshot) Stats() Stats {
	st := Stats{NodesExpanded: len(s.expanded)}

	discovered := len(s.parents)
	if _, ok := s.parents[s.start]; !ok {
		discovered++
	}
	st.NodesDiscovered = discovered

	if s.HasCurrent() {
		st.HasDepth = true
		seen := map[int]bool{s.current: true}
		for id := s.current; ; {
			p, ok := s.parents[id]
			if !ok || seen[p] {
				break
			}
			seen[p] = true
			st.CurrentDepth++
			id = p
		}
	}

	if len(s.path) > 0 {
		st.StepsToGoal, st.HasSteps = len(s.path)-1, true
		if ns, ok := s.Node(s.goal); ok && ns.HasCost {
			st.FinalCost, st.HasFinalCost = ns.Cost, true
		}
	}

	return st
}
