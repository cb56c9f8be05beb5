// SPDX-License-Identifier: MIT
//
// File: history.go
// Role: Store with Record/Back/Forward/JumpTo/Clear and read accessors.
// Concurrency:
//   - All methods take mu; returned Steps share only immutable snapshots.

package history

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/searchlab/snapshot"
)

// Sentinel errors for navigation.
var (
	ErrNoPreviousStep  = errors.New("history: already at the first step")
	ErrNoNextStep      = errors.New("history: already at the last step")
	ErrIndexOutOfRange = errors.New("history: step index out of range")
)

// Before is the cursor value of an empty or freshly cleared store.
const Before = -1

// Step is one recorded log entry.
type Step struct {
	Message  string
	Snapshot *snapshot.Snapshot
}

// Store is the step log plus its cursor.
type Store struct {
	mu    sync.RWMutex
	steps []Step
	index int
}

// New returns an empty store with the cursor before the first step.
func New() *Store {
	return &Store{index: Before}
}

// Record appends a step and moves the cursor onto it. It returns the new
// step's index.
func (s *Store) Record(message string, snap *snapshot.Snapshot) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.steps = append(s.steps, Step{Message: message, Snapshot: snap})
	s.index = len(s.steps) - 1

	return s.index
}

// Back moves the cursor one step towards the start and returns that step.
// At the first step (or on an empty store) it returns ErrNoPreviousStep and
// leaves the cursor alone.
func (s *Store) Back() (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index <= 0 {
		return Step{}, ErrNoPreviousStep
	}
	s.index--

	return s.steps[s.index], nil
}

// Forward moves the cursor one step towards the end and returns that step.
// At the last step it returns ErrNoNextStep and leaves the cursor alone.
func (s *Store) Forward() (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index >= len(s.steps)-1 {
		return Step{}, ErrNoNextStep
	}
	s.index++

	return s.steps[s.index], nil
}

// JumpTo moves the cursor to i and returns that step.
func (s *Store) JumpTo(i int) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.steps) {
		return Step{}, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i, len(s.steps))
	}
	s.index = i

	return s.steps[i], nil
}

// Clear drops every step and resets the cursor to Before.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.steps = nil
	s.index = Before
}

// Len returns the number of recorded steps.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.steps)
}

// Index returns the cursor, Before when nothing is selected.
func (s *Store) Index() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.index
}

// Current returns the step under the cursor; ok is false before the start.
func (s *Store) Current() (Step, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.index < 0 {
		return Step{}, false
	}

	return s.steps[s.index], true
}

// At returns step i without moving the cursor.
func (s *Store) At(i int) (Step, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i < 0 || i >= len(s.steps) {
		return Step{}, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i, len(s.steps))
	}

	return s.steps[i], nil
}

// Steps returns a copy of the whole log.
func (s *Store) Steps() []Step {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.steps)
}

// Messages returns the recorded messages in order.
func (s *Store) Messages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.steps))
	for i, st := range s.steps {
		out[i] = st.Message
	}

	return out
}
