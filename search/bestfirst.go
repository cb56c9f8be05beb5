// SPDX-License-Identifier: MIT
//
// File: bestfirst.go
// Role: UCS and A* steppers over a lazy-deletion frontier.
// Determinism:
//   - Frontier order is (priority, insertion sequence); UCS priority is the
//     path cost g, A* priority is g + h.
//   - Neighbors are relaxed in adjacency order; the first link between two
//     nodes supplies the weight.

package search

// ranker is the stepper for UCS and A*.
type ranker struct {
	tr       *trace
	open     *frontier
	explored map[int]bool
}

func newRanker(tr *trace) *ranker {
	r := &ranker{
		tr:       tr,
		open:     newFrontier(),
		explored: make(map[int]bool),
	}
	r.open.push(tr.start, 0, r.priority(tr.start, 0))

	return r
}

func (r *ranker) Algorithm() Algorithm { return r.tr.alg }
func (r *ranker) Done() bool           { return r.tr.status.Terminal() }
func (r *ranker) Result() Result       { return r.tr.result() }

// Cancel discards the frontier and ends the run.
func (r *ranker) Cancel() {
	if r.Done() {
		return
	}
	r.open.clear()
	r.tr.finish(StatusCancelled)
}

// priority orders the frontier: g for UCS, g + h for A*.
func (r *ranker) priority(id int, g float64) float64 {
	if r.tr.alg == AStar {
		return g + r.tr.heuristic(id)
	}

	return g
}

// Step pops one entry and either skips it (stale) or expands it.
func (r *ranker) Step() (Tick, error) {
	tr := r.tr
	if r.Done() {
		return Tick{Status: tr.status}, ErrFinished
	}
	tr.status = StatusRunning

	top, ok := r.open.pop()
	if !ok {
		tr.finish(StatusExhausted)
		tr.emit(msgBestExhausted(tr.alg))

		return tr.flush(), nil
	}

	current, g := top.node, top.cost
	if best := tr.costs[current]; g > best {
		tr.emit(msgSkip(tr.alg, current, g, best))

		return tr.flush(), nil
	}

	r.explored[current] = true
	tr.expand(current)
	tr.emit(msgExpand(tr.alg, current, g, g+tr.heuristic(current)))

	if current == tr.goal {
		path, err := tr.pathTo(current)
		if err != nil {
			return tr.fail(err)
		}
		tr.path = path
		tr.finish(StatusGoalFound)
		tr.emit(msgBestGoal(tr.alg, tr.goal, path, g))

		return tr.flush(), nil
	}

	for _, nbr := range tr.adj[current] {
		w, ok := tr.graph.LinkWeight(current, nbr)
		if !ok || !w.Valid {
			continue
		}
		next := g + w.Value
		old, known := tr.costs[nbr]
		if known && next >= old {
			continue
		}
		tr.relax(nbr, current, next)
		tr.discover(nbr)
		r.open.push(nbr, next, r.priority(nbr, next))
		tr.emit(msgRelax(tr.alg, nbr, old, known, next, next+tr.heuristic(nbr)))
		if r.explored[nbr] {
			delete(r.explored, nbr)
			tr.emit(msgReopen(tr.alg, nbr))
		}
	}

	return tr.flush(), nil
}
