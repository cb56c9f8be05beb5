// SPDX-License-Identifier: MIT
//
// File: goal.go
// Role: goal selection and heuristic upkeep.

package session

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/heuristic"
)

// Goal returns the selected goal; ok is false when none is set.
func (s *Session) Goal() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.goal, s.goal != core.NoNode
}

// Heuristics returns a copy of the table for the selected goal.
func (s *Session) Heuristics() (heuristic.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.heuristics == nil {
		return heuristic.Table{Goal: core.NoNode}, false
	}

	return s.heuristics.Clone(), true
}

// SetGoal selects id as the goal, recomputes heuristics and cancels any
// run. History is kept. An unknown id returns an error wrapping
// core.ErrNodeNotFound and changes nothing.
func (s *Session) SetGoal(id int) error {
	s.mu.Lock()
	if !s.graph.HasNode(id) {
		s.mu.Unlock()

		return fmt.Errorf("%w: goal %d", core.ErrNodeNotFound, id)
	}
	table, err := s.setGoalLocked(id)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.interrupt(false)
	s.announce(table)
	s.log.Info("goal set", slog.Int("goal", id))

	return nil
}

// ClearGoal unsets the goal, drops heuristics and cancels any run.
func (s *Session) ClearGoal() {
	s.mu.Lock()
	table := s.clearGoalLocked()
	s.mu.Unlock()

	s.interrupt(false)
	s.announce(table)
}

// RandomGoal selects a uniformly random existing node as the goal and
// returns it. On an empty graph it returns ErrEmptyGraph and clears the
// goal.
func (s *Session) RandomGoal() (int, error) {
	s.mu.Lock()
	nodes := s.graph.Nodes()
	if len(nodes) == 0 {
		table := s.clearGoalLocked()
		s.mu.Unlock()
		s.interrupt(false)
		s.announce(table)

		return core.NoNode, ErrEmptyGraph
	}
	id := nodes[s.rng.Intn(len(nodes))]
	table, err := s.setGoalLocked(id)
	s.mu.Unlock()
	if err != nil {
		return core.NoNode, err
	}

	s.interrupt(false)
	s.announce(table)
	s.log.Info("random goal set", slog.Int("goal", id))

	return id, nil
}

func (s *Session) setGoalLocked(id int) (*heuristic.Table, error) {
	t, err := heuristic.Compute(s.graph, id)
	if err != nil {
		return nil, err
	}
	s.goal = id
	s.heuristics = &t

	return s.heuristicsCopyLocked(), nil
}

// clearGoalLocked unsets the goal. It returns the empty table to announce,
// or nil when no goal was set.
func (s *Session) clearGoalLocked() *heuristic.Table {
	if s.goal == core.NoNode {
		return nil
	}
	s.goal = core.NoNode
	s.heuristics = nil

	return &heuristic.Table{Goal: core.NoNode}
}

// refreshLocked recomputes heuristics after a graph edit. It returns the
// table to announce, or nil when no goal is set.
func (s *Session) refreshLocked() *heuristic.Table {
	if s.goal == core.NoNode {
		return nil
	}
	t, err := heuristic.Compute(s.graph, s.goal)
	if err != nil {
		return s.clearGoalLocked()
	}
	s.heuristics = &t

	return s.heuristicsCopyLocked()
}

func (s *Session) heuristicsCopyLocked() *heuristic.Table {
	c := s.heuristics.Clone()

	return &c
}
