// SPDX-License-Identifier: MIT
//
// File: trace.go
// Role: per-run bookkeeping shared by every algorithm: discovery indexes,
//       parents, costs, expansion order, path reconstruction and snapshot
//       capture into the current tick.
// Determinism:
//   - Every map is read through ordered node/expanded slices when captured.

package search

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/snapshot"
)

// trace holds the mutable state of a single run.
type trace struct {
	alg   Algorithm
	start int
	goal  int
	log   *slog.Logger

	// Frozen view of the graph taken at construction.
	graph *core.Graph
	nodes []int
	links []core.Link
	adj   map[int][]int
	heur  map[int]float64

	discovery map[int]int
	nextIndex int
	parents   map[int]int
	costs     map[int]float64 // nil for BFS/DFS

	expanded    []int
	expandedSet map[int]struct{}
	dedupExpand bool // A* reports each expanded node once

	path   []int
	events []Event
	total  int
	status Status
}

func newTrace(alg Algorithm, g *core.Graph, start, goal int, o Options) *trace {
	t := &trace{
		alg:         alg,
		start:       start,
		goal:        goal,
		log:         o.Logger,
		graph:       g,
		nodes:       g.Nodes(),
		links:       g.Links(),
		adj:         g.Adjacency(),
		discovery:   make(map[int]int),
		parents:     make(map[int]int),
		expandedSet: make(map[int]struct{}),
		dedupExpand: alg == AStar,
		status:      StatusIdle,
	}
	if o.Heuristics != nil {
		t.heur = o.Heuristics.Values
	}
	if alg.Weighted() {
		t.costs = map[int]float64{start: 0}
	}
	t.discover(start)

	return t
}

// discover assigns the next discovery index to id unless it already has one.
func (t *trace) discover(id int) {
	if _, ok := t.discovery[id]; ok {
		return
	}
	t.discovery[id] = t.nextIndex
	t.nextIndex++
}

// adopt records parent for child only on first discovery.
func (t *trace) adopt(child, parent int) {
	if _, ok := t.parents[child]; ok {
		return
	}
	t.parents[child] = parent
}

// relax records parent for child unconditionally.
func (t *trace) relax(child, parent int, cost float64) {
	t.parents[child] = parent
	t.costs[child] = cost
}

// expand appends id to the expansion order.
func (t *trace) expand(id int) {
	if t.dedupExpand {
		if _, ok := t.expandedSet[id]; ok {
			return
		}
	}
	t.expandedSet[id] = struct{}{}
	t.expanded = append(t.expanded, id)
}

// heuristic returns h(id), or 0 when no estimate exists.
func (t *trace) heuristic(id int) float64 {
	return t.heur[id]
}

// pathTo walks parents from target back to start. A repeated node or a
// missing parent means the parent map is corrupt.
func (t *trace) pathTo(target int) ([]int, error) {
	path := []int{target}
	seen := map[int]bool{target: true}
	for cur := target; cur != t.start; {
		p, ok := t.parents[cur]
		if !ok {
			return nil, fmt.Errorf("%w: node %d has no parent", ErrBrokenParentChain, cur)
		}
		if seen[p] {
			return nil, fmt.Errorf("%w: cycle through node %d", ErrBrokenParentChain, p)
		}
		seen[p] = true
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}

// emit captures a snapshot for msg and appends it to the current tick.
func (t *trace) emit(msg string) {
	t.events = append(t.events, Event{Message: msg, Snapshot: t.capture(msg)})
	t.total++
}

// capture builds the immutable snapshot for the current state.
func (t *trace) capture(msg string) *snapshot.Snapshot {
	current := core.NoNode
	if n := len(t.expanded); n > 0 {
		current = t.expanded[n-1]
	}

	return snapshot.New(snapshot.State{
		Nodes:       t.nodes,
		Links:       t.links,
		Adjacency:   t.adj,
		Costs:       t.costs,
		Heuristics:  t.heur,
		Discovery:   t.discovery,
		Parents:     t.parents,
		Highlighted: t.highlighted(),
		Start:       t.start,
		Goal:        t.goal,
		Path:        t.path,
		Message:     msg,
		Expanded:    t.expanded,
		Current:     current,
	})
}

// highlighted is the expansion order followed by path nodes not yet listed.
func (t *trace) highlighted() []int {
	out := make([]int, 0, len(t.expanded)+len(t.path))
	seen := make(map[int]bool, cap(out))
	for _, id := range slices.Concat(t.expanded, t.path) {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}

	return out
}

// flush returns the events of the current tick and starts a new one.
func (t *trace) flush() Tick {
	tick := Tick{Events: t.events, Status: t.status}
	t.events = nil
	t.log.Debug("search step",
		slog.String("algorithm", t.alg.String()),
		slog.Int("events", len(tick.Events)),
		slog.String("status", t.status.String()))

	return tick
}

// finish moves the run into a terminal status.
func (t *trace) finish(s Status) {
	t.status = s
}

// fail ends the run on an invariant violation.
func (t *trace) fail(err error) (Tick, error) {
	t.finish(StatusFailed)
	t.log.Error("search invariant violated",
		slog.String("algorithm", t.alg.String()),
		slog.Int("start", t.start),
		slog.Int("goal", t.goal),
		slog.Any("error", err))

	return t.flush(), err
}

// result assembles the public Result.
func (t *trace) result() Result {
	r := Result{
		Algorithm: t.alg,
		Status:    t.status,
		Start:     t.start,
		Goal:      t.goal,
		Path:      slices.Clone(t.path),
		Expanded:  slices.Clone(t.expanded),
		Parents:   maps.Clone(t.parents),
		Events:    t.total,
	}
	if t.costs != nil && t.status == StatusGoalFound {
		r.Cost, r.HasCost = t.costs[t.goal], true
	}

	return r
}

// joinIDs renders ids as "a, b, c".
func joinIDs(ids []int, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, sep)
}

// formatCost renders a cost rounded to two decimals with trailing zeros
// dropped, e.g. 6, 6.5, 6.33.
func formatCost(c float64) string {
	return strconv.FormatFloat(roundCents(c), 'f', -1, 64)
}
