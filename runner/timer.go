// SPDX-License-Identifier: MIT
//
// File: timer.go
// Role: TimerScheduler, a wall-clock Scheduler with a single dispatch
//       goroutine.
// Concurrency:
//   - Schedule/Cancel are safe from any goroutine, including from inside a
//     running task.
//   - Tasks run one at a time on the dispatch goroutine.

package runner

import (
	"sync"
	"time"
)

// TimerScheduler dispatches tasks on one goroutine in (due, seq) order.
// Stop must be called to release the goroutine.
type TimerScheduler struct {
	mu    sync.Mutex
	q     *taskQueue
	epoch time.Time

	wake     chan struct{}
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	stopped  bool
}

// NewTimerScheduler starts the dispatch goroutine.
func NewTimerScheduler() *TimerScheduler {
	s := &TimerScheduler{
		q:     newTaskQueue(),
		epoch: time.Now(),
		wake:  make(chan struct{}, 1),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go s.loop()

	return s
}

// Schedule queues fn to run after delay (negative delays count as zero).
// After Stop it returns the zero Handle and drops fn.
func (s *TimerScheduler) Schedule(delay time.Duration, fn func()) Handle {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()

		return 0
	}
	h := s.q.push(s.offset()+max(delay, 0).Nanoseconds(), fn)
	s.mu.Unlock()

	s.poke()

	return h
}

// Cancel removes a pending task.
func (s *TimerScheduler) Cancel(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.q.remove(h)
}

// Pending returns the number of queued tasks.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.q.len()
}

// Stop discards pending tasks and ends the dispatch goroutine. A task
// already running completes; nothing runs after it. Stop is idempotent and
// safe to call from inside a task. Done is closed once the goroutine exits.
func (s *TimerScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.q.clear()
		s.mu.Unlock()
		close(s.stop)
	})
}

// Done is closed when the dispatch goroutine has exited.
func (s *TimerScheduler) Done() <-chan struct{} {
	return s.done
}

func (s *TimerScheduler) offset() int64 {
	return time.Since(s.epoch).Nanoseconds()
}

func (s *TimerScheduler) poke() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *TimerScheduler) loop() {
	defer close(s.done)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		var fire <-chan time.Time

		s.mu.Lock()
		next, ok := s.q.peek()
		if ok && next.due <= s.offset() {
			s.q.pop()
			s.mu.Unlock()

			next.fn()

			continue
		}
		if ok {
			timer.Reset(time.Duration(next.due - s.offset()))
			fire = timer.C
		}
		s.mu.Unlock()

		select {
		case <-s.stop:
			return
		case <-s.wake:
			timer.Stop()
		case <-fire:
		}
	}
}
