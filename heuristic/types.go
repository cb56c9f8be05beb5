// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Table type and sentinel errors for the heuristic package.

package heuristic

import (
	"errors"
	"maps"
)

// ErrGoalNotFound indicates the requested goal is not a node of the graph.
var ErrGoalNotFound = errors.New("heuristic: goal node not found")

// Table maps every node id to its heuristic estimate towards Goal.
type Table struct {
	// Goal is the node the estimates point at.
	Goal int

	// Values holds one entry per node present when the table was computed.
	Values map[int]float64
}

// Of returns the estimate for id. ok is false when id was not in the graph
// at computation time.
func (t Table) Of(id int) (h float64, ok bool) {
	h, ok = t.Values[id]

	return h, ok
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	return Table{Goal: t.Goal, Values: maps.Clone(t.Values)}
}

// Empty reports whether the table carries no estimates.
func (t Table) Empty() bool {
	return len(t.Values) == 0
}
