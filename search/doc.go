// Package search implements the step-by-step graph search engine: BFS, DFS,
// Uniform-Cost Search and A* as resumable Steppers that emit one immutable
// snapshot per log message.
//
// Step protocol:
//
//	s, err := search.New(search.UCS, g, start, goal)
//	for !s.Done() {
//	    tick, err := s.Step() // one expansion, one stale skip, or the finish
//	    for _, ev := range tick.Events { /* ev.Message, ev.Snapshot */ }
//	}
//	res := s.Result()
//
// Each Step performs exactly one unit of work and returns the events it
// produced, in order. Callers decide when (and whether) the next Step runs;
// this is what lets a controller pace a run or cancel it between steps.
// Drive runs a Stepper to completion synchronously.
//
// Semantics shared with the visualizer this engine drives:
//
//   - BFS/DFS record a node's parent on first discovery and never overwrite
//     it. DFS pushes neighbors in reverse adjacency order so they pop in
//     forward order.
//   - UCS/A* overwrite parent and cost on every relaxation, push duplicate
//     frontier entries instead of decreasing keys, skip stale entries on pop,
//     and reopen already-expanded nodes whose cost improves.
//   - Frontier ties are broken by insertion order.
//   - Discovery indexes are assigned once per node in first-encounter order;
//     the start node always gets 0.
//
// Steppers work on a private Clone of the graph taken by New, so later edits
// to the live graph never leak into a running search or its snapshots.
//
// Errors:
//
//   - ErrStartNotFound, ErrGoalNotFound: ids absent from the graph.
//   - ErrGoalRequired: A* without a goal.
//   - ErrNotFullyWeighted, ErrNegativeWeight: UCS/A* preconditions.
//   - ErrStaleHeuristics: A* heuristics missing or computed for another goal.
//   - ErrBrokenParentChain: path reconstruction hit a cycle or a gap. This is
//     an engine defect; the run ends with StatusFailed.
//   - ErrFinished: Step called on a finished Stepper.
//
// Concurrency: a Stepper is not safe for concurrent use. Snapshots it emits
// are immutable and may be shared freely.
package search
