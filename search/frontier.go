// SPDX-License-Identifier: MIT
//
// File: frontier.go
// Role: best-first frontier for UCS/A*, an ordered B-tree keyed by
//       (priority, insertion sequence).
// Determinism:
//   - Equal priorities pop in insertion order.

package search

import (
	"github.com/tidwall/btree"
)

// entry is one frontier record. Duplicates for the same node are expected;
// stale ones are recognised on pop by comparing cost with the best known.
type entry struct {
	priority float64
	seq      uint64
	node     int
	cost     float64
}

func entryLess(a, b entry) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.seq < b.seq
}

// frontier is a min-ordered multiset of entries.
type frontier struct {
	tree *btree.BTreeG[entry]
	seq  uint64
}

func newFrontier() *frontier {
	return &frontier{tree: btree.NewBTreeG[entry](entryLess)}
}

// push inserts node with its path cost and ordering priority.
func (f *frontier) push(node int, cost, priority float64) {
	f.tree.Set(entry{priority: priority, seq: f.seq, node: node, cost: cost})
	f.seq++
}

// pop removes and returns the lowest (priority, seq) entry.
func (f *frontier) pop() (entry, bool) {
	return f.tree.PopMin()
}

// Len returns the number of pending entries.
func (f *frontier) Len() int {
	return f.tree.Len()
}

// clear drops every pending entry.
func (f *frontier) clear() {
	f.tree.Clear()
}
