// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: New (validation + stepper construction) and Drive (synchronous run).
// Concurrency:
//   - New clones g under its read lock; the Stepper never touches g again.

package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/searchlab/core"
)

// New validates the run preconditions and returns a Stepper for alg.
//
// Validation order (first failure wins, nothing is mutated on failure):
//  1. g non-nil (core.ErrGraphNil).
//  2. start exists (ErrStartNotFound).
//  3. goal exists unless core.NoNode (ErrGoalNotFound).
//  4. A*: goal set (ErrGoalRequired).
//  5. UCS/A*: every link weighted (ErrNotFullyWeighted), none negative
//     (ErrNegativeWeight).
//  6. A*: heuristics present and computed for goal (ErrStaleHeuristics).
//
// Complexity: O(V + E) for the clone.
func New(alg Algorithm, g *core.Graph, start, goal int, opts ...Option) (Stepper, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(alg, g, start, goal, o); err != nil {
		return nil, err
	}

	tr := newTrace(alg, g.Clone(), start, goal, o)
	if alg.Weighted() {
		return newRanker(tr), nil
	}

	return newWalker(tr), nil
}

// Validate runs New's precondition checks without building a Stepper.
func Validate(alg Algorithm, g *core.Graph, start, goal int, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return validate(alg, g, start, goal, o)
}

func validate(alg Algorithm, g *core.Graph, start, goal int, o Options) error {
	if alg < BFS || alg > AStar {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if g == nil {
		return core.ErrGraphNil
	}
	if !g.HasNode(start) {
		return fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	if goal != core.NoNode && !g.HasNode(goal) {
		return fmt.Errorf("%w: %d", ErrGoalNotFound, goal)
	}
	if alg == AStar && goal == core.NoNode {
		return ErrGoalRequired
	}
	if alg.Weighted() {
		for _, l := range g.Links() {
			if !l.Weight.Valid {
				return fmt.Errorf("%w: link %d-%d has no weight", ErrNotFullyWeighted, l.Source, l.Target)
			}
			if l.Weight.Value < 0 {
				return fmt.Errorf("%w: link %d-%d weight=%g", ErrNegativeWeight, l.Source, l.Target, l.Weight.Value)
			}
		}
	}
	if alg == AStar {
		if o.Heuristics == nil || o.Heuristics.Goal != goal {
			return fmt.Errorf("%w: %d", ErrStaleHeuristics, goal)
		}
	}

	return nil
}

// Drive steps s to completion, handing every event to emit (which may be
// nil). Cancellation of ctx is checked once per step; on cancellation s is
// cancelled and ctx.Err() returned alongside the partial result.
func Drive(ctx context.Context, s Stepper, emit func(Event)) (Result, error) {
	for !s.Done() {
		select {
		case <-ctx.Done():
			s.Cancel()

			return s.Result(), ctx.Err()
		default:
		}

		tick, err := s.Step()
		if emit != nil {
			for _, ev := range tick.Events {
				emit(ev)
			}
		}
		if err != nil {
			return s.Result(), err
		}
	}

	return s.Result(), nil
}
