// Package snapshot defines the immutable point-in-time record of a search
// run: node overlays (cost, heuristic, discovery index), links, adjacency,
// parent pointers, highlight set, goal, path, message, expanded order and the
// node currently being processed.
//
// A Snapshot is built once with New from a State value and never changes
// afterwards. New deep-copies every slice and map it receives, and every
// accessor returns a fresh copy, so neither the producer nor any consumer can
// reach a Snapshot's internals. Snapshots are therefore safe to share across
// goroutines without locking.
//
// Derived views:
//
//   - Apply projects a snapshot's overlays onto the nodes of a live graph
//     (the restore-on-navigation step of a visualizer), without mutating
//     either side.
//   - Tree rebuilds the discovered search tree from the parent pointers with
//     siblings ordered by discovery index.
//   - Stats summarizes the tree: nodes expanded, nodes discovered, depth of
//     the current node, steps to the goal and final cost.
package snapshot
