// Package heuristic computes the admissible A* heuristic used by the search
// engine: the hop distance from every node to a goal, scaled by the lightest
// link weight in the graph.
//
// Compute runs a single breadth-first sweep backward from the goal over the
// unweighted adjacency, so its cost is O(V + E). Nodes that cannot reach the
// goal get 0, and so does every node when any link is unweighted: without a
// full weighting no lower bound on path cost exists.
//
// A Table is a plain value; callers may keep it across runs and compare its
// Goal against the goal of a new run to detect stale tables.
package heuristic
