// SPDX-License-Identifier: MIT
//
// File: scheduler.go
// Role: Scheduler interface and the (due, seq) ordered task queue shared by
//       TimerScheduler and ManualScheduler.
// Concurrency:
//   - taskQueue is not synchronized; owners guard it with their own mutex.

package runner

import (
	"time"

	"github.com/tidwall/btree"
)

// Handle identifies a scheduled task. The zero Handle refers to nothing.
type Handle uint64

// Scheduler runs callbacks after a delay. Cancel reports whether the task
// was still pending; cancelling an unknown or already-run Handle is a no-op.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Handle
	Cancel(h Handle) bool
}

type task struct {
	due int64
	seq uint64
	fn  func()
}

func taskLess(a, b task) bool {
	if a.due != b.due {
		return a.due < b.due
	}

	return a.seq < b.seq
}

type taskQueue struct {
	tree    *btree.BTreeG[task]
	pending map[Handle]task
	seq     uint64
}

func newTaskQueue() *taskQueue {
	return &taskQueue{
		tree:    btree.NewBTreeG[task](taskLess),
		pending: make(map[Handle]task),
	}
}

func (q *taskQueue) push(due int64, fn func()) Handle {
	q.seq++
	t := task{due: due, seq: q.seq, fn: fn}
	q.tree.Set(t)
	h := Handle(t.seq)
	q.pending[h] = t

	return h
}

func (q *taskQueue) remove(h Handle) bool {
	t, ok := q.pending[h]
	if !ok {
		return false
	}
	delete(q.pending, h)
	q.tree.Delete(t)

	return true
}

func (q *taskQueue) peek() (task, bool) {
	return q.tree.Min()
}

func (q *taskQueue) pop() (task, bool) {
	t, ok := q.tree.PopMin()
	if ok {
		delete(q.pending, Handle(t.seq))
	}

	return t, ok
}

func (q *taskQueue) len() int {
	return q.tree.Len()
}

func (q *taskQueue) clear() {
	q.tree.Clear()
	clear(q.pending)
}
