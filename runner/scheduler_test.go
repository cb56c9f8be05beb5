// SPDX-License-Identifier: MIT
package runner_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchlab/runner"
)

func TestManualScheduler_OrderAndClock(t *testing.T) {
	m := runner.NewManualScheduler()
	var got []string
	m.Schedule(20*time.Millisecond, func() { got = append(got, "c") })
	m.Schedule(10*time.Millisecond, func() { got = append(got, "a") })
	m.Schedule(10*time.Millisecond, func() { got = append(got, "b") })
	h := m.Schedule(15*time.Millisecond, func() { got = append(got, "x") })
	assert.True(t, m.Cancel(h))
	assert.False(t, m.Cancel(h))
	assert.Equal(t, 3, m.Pending())

	assert.Equal(t, 0, m.Advance(9*time.Millisecond))
	assert.Equal(t, 2, m.Advance(time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 10*time.Millisecond, m.Now())

	assert.Equal(t, 1, m.Flush())
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 20*time.Millisecond, m.Now())
	assert.False(t, m.RunNext())
}

func TestManualScheduler_TasksScheduledDuringAdvance(t *testing.T) {
	m := runner.NewManualScheduler()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 5 {
			m.Schedule(10*time.Millisecond, tick)
		}
	}
	m.Schedule(0, tick)

	assert.Equal(t, 3, m.Advance(25*time.Millisecond))
	assert.Equal(t, 25*time.Millisecond, m.Now())
	assert.Equal(t, 2, m.Flush())
	assert.Equal(t, 5, count)
}

func TestManualScheduler_NegativeDelay(t *testing.T) {
	m := runner.NewManualScheduler()
	ran := false
	m.Schedule(-time.Second, func() { ran = true })
	m.Advance(0)
	assert.True(t, ran)
}

func TestTimerScheduler_RunsInOrder(t *testing.T) {
	s := runner.NewTimerScheduler()
	defer s.Stop()

	var (
		mu  sync.Mutex
		got []int
		wg  sync.WaitGroup
	)
	wg.Add(5)
	for i := 0; i < 5; i++ {
		s.Schedule(5*time.Millisecond, func() {
			defer wg.Done()
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}
	wg.Wait()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestTimerScheduler_CancelAndStop(t *testing.T) {
	s := runner.NewTimerScheduler()

	fired := make(chan struct{}, 1)
	h := s.Schedule(time.Hour, func() { fired <- struct{}{} })
	assert.Equal(t, 1, s.Pending())
	assert.True(t, s.Cancel(h))
	assert.Equal(t, 0, s.Pending())

	s.Schedule(time.Hour, func() { fired <- struct{}{} })
	s.Stop()
	s.Stop()
	select {
	case <-s.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("dispatch goroutine did not exit")
	}
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, runner.Handle(0), s.Schedule(0, func() { fired <- struct{}{} }))

	select {
	case <-fired:
		t.Fatal("task ran after cancel or stop")
	case <-time.After(20 * time.Millisecond):
	}
	require.Equal(t, 0, s.Pending())
}

func TestTimerScheduler_EarlierTaskPreemptsWait(t *testing.T) {
	s := runner.NewTimerScheduler()
	defer s.Stop()

	done := make(chan struct{})
	s.Schedule(time.Hour, func() {})
	s.Schedule(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("short task waited behind long one")
	}
}
