// SPDX-License-Identifier: MIT
//
// File: edit.go
// Role: graph generation and edits.
// Concurrency:
//   - Mutations run under mu; the run is cancelled and hooks fire after mu
//     is released.

package session

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/searchlab/builder"
	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/heuristic"
)

// Generate replaces the graph with a random connected graph of n nodes
// (see builder.RandomConnected). It cancels any run, clears history and
// clears the goal. n < 1 leaves an empty graph.
func (s *Session) Generate(n int, weighted bool) error {
	s.mu.Lock()
	err := builder.Apply(s.graph, builder.RandomConnected(n, weighted), builder.WithRand(s.rng))
	if err != nil {
		s.mu.Unlock()

		return err
	}
	cleared := s.clearGoalLocked()
	nodes, links := s.graph.NodeCount(), s.graph.LinkCount()
	s.mu.Unlock()

	s.interrupt(true)
	s.announce(cleared)
	s.log.Info("graph generated",
		slog.Int("nodes", nodes),
		slog.Int("links", links),
		slog.Bool("weighted", weighted),
	)

	return nil
}

// AddNode adds a node linked to every existing id in parents and returns
// its id. New links get a random integer weight in
// [RandomWeightLo, RandomWeightHi] when randomize-weights is on, and no
// weight otherwise. It cancels any run and clears history.
func (s *Session) AddNode(parents []int) int {
	s.mu.Lock()
	var weigh core.WeightFn
	if s.randomize {
		weigh = builder.LinkWeights(builder.UniformIntWeightFn(RandomWeightLo, RandomWeightHi), s.rng)
	}
	id := s.graph.AddNode(parents, weigh)
	table := s.refreshLocked()
	s.mu.Unlock()

	s.interrupt(true)
	s.announce(table)
	s.log.Debug("node added", slog.Int("node", id), slog.Any("parents", parents))

	return id
}

// DeleteNode removes id and its links. Deleting the goal clears it. It
// cancels any run and clears history. An unknown id returns
// core.ErrNodeNotFound and changes nothing.
func (s *Session) DeleteNode(id int) error {
	s.mu.Lock()
	if err := s.graph.DeleteNode(id); err != nil {
		s.mu.Unlock()

		return err
	}
	var table *heuristic.Table
	if id == s.goal {
		table = s.clearGoalLocked()
	} else {
		table = s.refreshLocked()
	}
	s.mu.Unlock()

	s.interrupt(true)
	s.announce(table)
	s.log.Debug("node deleted", slog.Int("node", id))

	return nil
}

// AddOrUpdateLink sets the weight of the link a-b, creating it when absent,
// and reports whether it was created. Updating cancels any run and clears
// history; creating cancels any run but keeps history.
//
// Errors: core.ErrSelfLink, core.ErrNodeNotFound; the graph is unchanged.
func (s *Session) AddOrUpdateLink(a, b int, w core.Weight) (bool, error) {
	s.mu.Lock()
	created, err := s.graph.AddOrUpdateLink(a, b, w)
	if err != nil {
		s.mu.Unlock()

		return false, err
	}
	table := s.refreshLocked()
	s.mu.Unlock()

	s.interrupt(!created)
	s.announce(table)
	s.log.Debug("link set",
		slog.Int("a", a),
		slog.Int("b", b),
		slog.String("weight", w.String()),
		slog.Bool("created", created),
	)

	return created, nil
}

// RemoveLink deletes the first link between a and b, cancels any run and
// clears history. With no such link it returns core.ErrLinkNotFound and
// changes nothing.
func (s *Session) RemoveLink(a, b int) error {
	s.mu.Lock()
	if !s.graph.RemoveLink(a, b) {
		s.mu.Unlock()

		return fmt.Errorf("%w: %d-%d", core.ErrLinkNotFound, a, b)
	}
	table := s.refreshLocked()
	s.mu.Unlock()

	s.interrupt(true)
	s.announce(table)
	s.log.Debug("link removed", slog.Int("a", a), slog.Int("b", b))

	return nil
}
