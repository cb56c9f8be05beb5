// SPDX-License-Identifier: MIT
//
// File: manual.go
// Role: ManualScheduler, a virtual-clock Scheduler for deterministic tests
//       and instant replay.
// Concurrency:
//   - Safe for concurrent use; tasks run on the goroutine calling Advance,
//     RunNext or Flush, with the internal lock released.

package runner

import (
	"sync"
	"time"
)

// ManualScheduler runs tasks only when its virtual clock is advanced.
type ManualScheduler struct {
	mu  sync.Mutex
	q   *taskQueue
	now int64
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{q: newTaskQueue()}
}

// Schedule queues fn at Now()+delay (negative delays count as zero).
func (m *ManualScheduler) Schedule(delay time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.q.push(m.now+max(delay, 0).Nanoseconds(), fn)
}

// Cancel removes a pending task.
func (m *ManualScheduler) Cancel(h Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.q.remove(h)
}

// Now returns the virtual time elapsed since creation.
func (m *ManualScheduler) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return time.Duration(m.now)
}

// Pending returns the number of queued tasks.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.q.len()
}

// Advance moves the clock forward by d, running every task that falls due
// on the way (including tasks those tasks schedule) in (due, seq) order.
// It returns the number of tasks run.
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + max(d, 0).Nanoseconds()
	m.mu.Unlock()

	ran := 0
	for {
		m.mu.Lock()
		t, ok := m.q.peek()
		if !ok || t.due > target {
			m.now = target
			m.mu.Unlock()

			return ran
		}
		m.q.pop()
		m.now = t.due
		m.mu.Unlock()

		t.fn()
		ran++
	}
}

// RunNext jumps the clock to the earliest task and runs it. It reports
// false when nothing is queued.
func (m *ManualScheduler) RunNext() bool {
	m.mu.Lock()
	t, ok := m.q.pop()
	if ok {
		m.now = max(m.now, t.due)
	}
	m.mu.Unlock()

	if ok {
		t.fn()
	}

	return ok
}

// Flush runs tasks until the queue is empty and returns how many ran.
func (m *ManualScheduler) Flush() int {
	ran := 0
	for m.RunNext() {
		ran++
	}

	return ran
}
