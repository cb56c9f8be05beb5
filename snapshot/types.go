// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeState, State (constructor input) and the Snapshot type.
// Determinism:
//   - Node overlays are kept in the order of State.Nodes.

package snapshot

import (
	"maps"
	"slices"

	"github.com/katalvlaran/searchlab/core"
)

// NodeState is the per-node overlay carried by a snapshot.
type NodeState struct {
	ID int

	// Cost is the best known path cost from start (UCS, A*).
	Cost    float64
	HasCost bool

	// Heuristic is the A* estimate towards the goal.
	Heuristic    float64
	HasHeuristic bool

	// DiscoveryIndex is the order in which the node was first encountered.
	DiscoveryIndex int
	Discovered     bool
}

// State is the mutable input New copies from. Producers fill it from their
// own bookkeeping; nil maps and slices are fine.
type State struct {
	Nodes      []int
	Links      []core.Link
	Adjacency  map[int][]int
	Costs      map[int]float64
	Heuristics map[int]float64
	Discovery  map[int]int
	Parents    map[int]int

	Highlighted []int
	Start       int
	Goal        int // core.NoNode when unset
	Path        []int
	Message     string
	Expanded    []int
	Current     int // core.NoNode when no node is being processed
}

// Snapshot is an immutable copy of search state. The zero value is not
// useful; build snapshots with New.
type Snapshot struct {
	nodes       []NodeState
	index       map[int]int // id → position in nodes
	links       []core.Link
	adjacency   map[int][]int
	parents     map[int]int
	highlighted []int
	start       int
	goal        int
	path        []int
	message     string
	expanded    []int
	current     int
}

// New deep-copies st into a fresh Snapshot.
// Complexity: O(V + E).
func New(st State) *Snapshot {
	s := &Snapshot{
		nodes:       make([]NodeState, 0, len(st.Nodes)),
		index:       make(map[int]int, len(st.Nodes)),
		links:       slices.Clone(st.Links),
		adjacency:   cloneAdjacency(st.Adjacency),
		parents:     maps.Clone(st.Parents),
		highlighted: slices.Clone(st.Highlighted),
		start:       st.Start,
		goal:        st.Goal,
		path:        slices.Clone(st.Path),
		message:     st.Message,
		expanded:    slices.Clone(st.Expanded),
		current:     st.Current,
	}
	if s.parents == nil {
		s.parents = make(map[int]int)
	}
	for _, id := range st.Nodes {
		ns := NodeState{ID: id}
		ns.Cost, ns.HasCost = st.Costs[id]
		ns.Heuristic, ns.HasHeuristic = st.Heuristics[id]
		ns.DiscoveryIndex, ns.Discovered = st.Discovery[id]
		s.index[id] = len(s.nodes)
		s.nodes = append(s.nodes, ns)
	}

	return s
}

func cloneAdjacency(src map[int][]int) map[int][]int {
	out := make(map[int][]int, len(src))
	for id, nbrs := range src {
		out[id] = slices.Clone(nbrs)
	}

	return out
}
