// SPDX-License-Identifier: MIT
//
// File: apply.go
// Role: pure projection of a snapshot onto the live graph's nodes.

package snapshot

import (
	"github.com/katalvlaran/searchlab/core"
)

// Apply returns one overlay per node currently in g, in g's node order.
// Nodes the snapshot knows get its cost, heuristic and discovery index;
// nodes added after capture get a blank overlay. Nodes deleted since capture
// are dropped. Neither s nor g is modified.
//
// Complexity: O(V).
func Apply(s *Snapshot, g *core.Graph) ([]NodeState, error) {
	if g == nil {
		return nil, core.ErrGraphNil
	}
	live := g.Nodes()
	out := make([]NodeState, 0, len(live))
	for _, id := range live {
		if ns, ok := s.Node(id); ok {
			out = append(out, ns)
			continue
		}
		out = append(out, NodeState{ID: id})
	}

	return out, nil
}
