// SPDX-License-Identifier: MIT
//
// File: uninformed.go
// Role: BFS and DFS steppers. They differ only in which end of the pending
//       list is popped and in the order neighbors are pushed.
// Determinism:
//   - BFS pushes neighbors in adjacency order and pops the front.
//   - DFS pushes neighbors in reverse adjacency order and pops the back,
//     so neighbors are visited in forward adjacency order.

package search

import (
	"slices"
)

// walker is the BFS/DFS stepper.
type walker struct {
	tr      *trace
	words   uninformedWords
	lifo    bool
	pending []int
	visited map[int]bool
	seen    []int // visited ids in marking order, for the summary line
}

func newWalker(tr *trace) *walker {
	w := &walker{
		tr:      tr,
		words:   bfsWords,
		lifo:    tr.alg == DFS,
		pending: []int{tr.start},
		visited: map[int]bool{tr.start: true},
		seen:    []int{tr.start},
	}
	if w.lifo {
		w.words = dfsWords
	}

	return w
}

func (w *walker) Algorithm() Algorithm { return w.tr.alg }
func (w *walker) Done() bool           { return w.tr.status.Terminal() }
func (w *walker) Result() Result       { return w.tr.result() }

// Cancel discards the pending list and ends the run.
func (w *walker) Cancel() {
	if w.Done() {
		return
	}
	w.pending = nil
	w.tr.finish(StatusCancelled)
}

// Step performs one visit: pop, expand, goal test, discover neighbors.
func (w *walker) Step() (Tick, error) {
	tr := w.tr
	if w.Done() {
		return Tick{Status: tr.status}, ErrFinished
	}
	tr.status = StatusRunning

	if len(w.pending) == 0 {
		tr.finish(StatusExhausted)
		tr.emit(msgUninformedExhausted(tr.alg))

		return tr.flush(), nil
	}

	current := w.pop()
	tr.expand(current)

	if current == tr.goal {
		path, err := tr.pathTo(current)
		if err != nil {
			return tr.fail(err)
		}
		tr.path = path
		tr.finish(StatusGoalFound)
		tr.emit(msgUninformedGoal(tr.alg, tr.goal, path))

		return tr.flush(), nil
	}

	if current == tr.start {
		tr.emit(msgRoot(tr.alg, current))
	} else {
		tr.emit(msgMove(tr.alg, w.words, current))
	}

	nbrs := slices.Clone(tr.adj[current])
	if w.lifo {
		slices.Reverse(nbrs)
	}
	for _, nbr := range nbrs {
		if w.visited[nbr] {
			continue
		}
		w.visited[nbr] = true
		w.seen = append(w.seen, nbr)
		w.pending = append(w.pending, nbr)
		tr.adopt(nbr, current)
		tr.discover(nbr)
		tr.emit(msgDiscovered(tr.alg, w.words, nbr))
	}
	tr.emit(msgContainer(tr.alg, w.words, w.pending, w.seen))

	return tr.flush(), nil
}

func (w *walker) pop() int {
	if w.lifo {
		last := len(w.pending) - 1
		id := w.pending[last]
		w.pending = w.pending[:last]

		return id
	}
	id := w.pending[0]
	w.pending = w.pending[1:]

	return id
}
