// SPDX-License-Identifier: MIT
//
// File: run.go
// Role: Run/Cancel/Reset and history navigation.

package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/heuristic"
	"github.com/katalvlaran/searchlab/history"
	"github.com/katalvlaran/searchlab/search"
)

// Run validates a run of alg from start to goal (core.NoNode for none) and
// starts it on the controller, which cancels any active run and clears
// history first. A validation failure is returned before anything changes.
//
// Heuristics come from the selected goal when goal matches it; otherwise
// they are computed for goal on the fly without changing the selection.
func (s *Session) Run(ctx context.Context, alg search.Algorithm, start, goal int) (uuid.UUID, error) {
	st, err := s.prepare(alg, start, goal)
	if err != nil {
		s.metrics.RecordValidationFailure(alg.String())
		s.log.Warn("run rejected",
			slog.String("algorithm", alg.String()),
			slog.Int("start", start),
			slog.Int("goal", goal),
			slog.Any("error", err),
		)

		return uuid.Nil, err
	}
	s.setView(nil)

	return s.ctrl.Start(ctx, st)
}

// RunToGoal is Run towards the selected goal (or none).
func (s *Session) RunToGoal(ctx context.Context, alg search.Algorithm, start int) (uuid.UUID, error) {
	goal, _ := s.Goal()

	return s.Run(ctx, alg, start, goal)
}

// prepare builds the stepper under mu. The stepper works on its own clone.
func (s *Session) prepare(alg search.Algorithm, start, goal int) (search.Stepper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opts := []search.Option{search.WithLogger(s.log)}
	if t := s.tableForLocked(goal); t != nil {
		opts = append(opts, search.WithHeuristics(*t))
	}

	return search.New(alg, s.graph, start, goal, opts...)
}

func (s *Session) tableForLocked(goal int) *heuristic.Table {
	if goal == core.NoNode {
		return nil
	}
	if s.heuristics != nil && s.heuristics.Goal == goal {
		return s.heuristics
	}
	t, err := heuristic.Compute(s.graph, goal)
	if err != nil {
		// search.New reports the missing goal.
		return nil
	}

	return &t
}

// Cancel stops the active run. It reports whether one was active; only
// then is "Algorithm Stopped." logged. The displayed snapshot is dropped
// either way.
func (s *Session) Cancel() bool {
	stopped := s.ctrl.Cancel()
	s.setView(nil)

	return stopped
}

// Reset cancels any run, clears history and clears the goal.
func (s *Session) Reset() {
	s.mu.Lock()
	table := s.clearGoalLocked()
	s.mu.Unlock()

	s.interrupt(true)
	s.announce(table)
}

// StepBack cancels any run and displays the previous step. At the first
// step it returns history.ErrNoPreviousStep and changes nothing.
func (s *Session) StepBack() (history.Step, error) {
	if s.history.Index() <= 0 {
		return history.Step{}, history.ErrNoPreviousStep
	}

	return s.navigate(s.history.Back)
}

// StepForward cancels any run and displays the next step. At the last
// step it returns history.ErrNoNextStep and changes nothing.
func (s *Session) StepForward() (history.Step, error) {
	if s.history.Index() >= s.history.Len()-1 {
		return history.Step{}, history.ErrNoNextStep
	}

	return s.navigate(s.history.Forward)
}

// JumpTo cancels any run and displays step i.
func (s *Session) JumpTo(i int) (history.Step, error) {
	if _, err := s.history.At(i); err != nil {
		return history.Step{}, err
	}

	return s.navigate(func() (history.Step, error) { return s.history.JumpTo(i) })
}

func (s *Session) navigate(move func() (history.Step, error)) (history.Step, error) {
	s.ctrl.Cancel()
	st, err := move()
	if err != nil {
		return st, err
	}
	s.setView(st.Snapshot)

	return st, nil
}
