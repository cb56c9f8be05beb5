// SPDX-License-Identifier: MIT

// Package core provides the live, mutable graph model the search engine reads:
// integer-identified nodes, undirected links carrying an optional weight, and a
// symmetric adjacency list rebuilt after every structural mutation.
//
// The Graph G = (V,E) keeps three invariants at all times:
//
//   - Every link's endpoints reference existing node ids.
//   - The adjacency list is a symmetric mirror of the link catalog: adding
//     link a–b appends b to adjacency[a] and a to adjacency[b], in link order.
//   - Node ids come from a monotonic counter and are never reused within the
//     lifetime of a Graph (Clear and Replace reset the counter explicitly).
//
// Why a dedicated model instead of vertex/edge maps keyed by string?
//
//   - Search algorithms depend on adjacency ORDER (DFS pushes neighbors in
//     reverse adjacency order, BFS enqueues in adjacency order), so neighbor
//     lists are ordered slices, not sets.
//   - Duplicate links between the same pair are permitted by construction;
//     weight lookups resolve to the first matching link.
//   - Links store plain ids only, never node references.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(parentIDs []int, weigh WeightFn) int     // O(V+E) (adjacency rebuild)
//	DeleteNode(id int) error                         // O(V+E)
//	HasNode(id int) bool                             // O(1)
//
//	// Link lifecycle
//	AddOrUpdateLink(a, b int, w Weight) (bool, error) // O(E)
//	RemoveLink(a, b int) bool                         // O(V+E)
//	LinkWeight(a, b int) (Weight, bool)               // O(E), first match wins
//
//	// Bulk
//	Replace(n int, links []Link) error                // O(V+E)
//	Clear()                                           // O(1)
//	Clone() *Graph                                    // O(V+E) deep copy
//
// Concurrency:
//
//	A single sync.RWMutex guards nodes, links, adjacency and the id counter.
//	Mutations take the write lock; queries take the read lock and return
//	copies, so callers never alias internal slices or maps.
//
// Errors:
//
//	ErrGraphNil      - nil *Graph passed to a package-level helper.
//	ErrNodeNotFound  - operation referenced a node id that does not exist.
//	ErrSelfLink      - link creation with identical endpoints.
//	ErrLinkNotFound  - no link exists between the given endpoints.
package core
