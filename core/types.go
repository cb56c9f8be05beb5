// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Link, Weight, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"strconv"
	"sync"
)

// NoNode is the sentinel id meaning "unset" (for example, no goal selected).
// Real node ids are always >= 0.
const NoNode = -1

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates a nil *Graph was supplied.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLink indicates a link from a node to itself was requested.
	ErrSelfLink = errors.New("core: cannot link a node to itself")

	// ErrLinkNotFound indicates no link exists between the given endpoints.
	ErrLinkNotFound = errors.New("core: link not found")
)

// Weight is an optional link weight. The zero value means "unweighted".
type Weight struct {
	// Value is meaningful only when Valid is true.
	Value float64

	// Valid reports whether the link carries a weight.
	Valid bool
}

// Unweighted is the explicit "no weight" value.
var Unweighted = Weight{}

// W returns a valid Weight holding v.
func W(v float64) Weight {
	return Weight{Value: v, Valid: true}
}

// String renders the weight, or "-" when unweighted.
func (w Weight) String() string {
	if !w.Valid {
		return "-"
	}

	return strconv.FormatFloat(w.Value, 'f', -1, 64)
}

// Link is an undirected connection between two nodes, stored by id only.
type Link struct {
	Source int
	Target int
	Weight Weight
}

// Connects reports whether the link joins a and b, in either direction.
func (l Link) Connects(a, b int) bool {
	return (l.Source == a && l.Target == b) || (l.Source == b && l.Target == a)
}

// Touches reports whether id is one of the link's endpoints.
func (l Link) Touches(id int) bool {
	return l.Source == id || l.Target == id
}

// WeightFn yields the weight for a freshly created link.
// A nil WeightFn means "create unweighted links".
type WeightFn func() Weight

// Graph is the live in-memory graph.
//
// nodes keeps insertion order (ids ascending by construction, since ids are
// allocated monotonically). adjacency is derived state, rebuilt from links.
type Graph struct {
	mu sync.RWMutex

	nextID    int              // next id handed out by AddNode
	nodes     []int            // node ids in insertion order
	index     map[int]struct{} // membership set over nodes
	links     []Link           // link catalog in insertion order
	adjacency map[int][]int    // id → neighbor ids, mirror of links
}

// NewGraph creates an empty Graph whose first AddNode returns id 0.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		index:     make(map[int]struct{}),
		adjacency: make(map[int][]int),
	}
}
