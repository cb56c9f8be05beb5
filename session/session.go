// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: Session construction, controller wiring, view state and read
//       accessors.
// Concurrency:
//   - mu guards graph, goal, heuristics, rng and the randomize flag.
//   - viewMu guards the displayed snapshot; it is taken from controller
//     hooks, so it never nests inside mu.

package session

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/heuristic"
	"github.com/katalvlaran/searchlab/history"
	"github.com/katalvlaran/searchlab/metrics"
	"github.com/katalvlaran/searchlab/runner"
	"github.com/katalvlaran/searchlab/search"
	"github.com/katalvlaran/searchlab/snapshot"
)

// Session owns a graph, its goal and heuristics, the step history and the
// run controller.
type Session struct {
	mu         sync.Mutex
	graph      *core.Graph
	goal       int
	heuristics *heuristic.Table
	rng        *rand.Rand
	randomize  bool

	history *history.Store
	ctrl    *runner.Controller
	log     *slog.Logger
	metrics *metrics.Recorder
	hooks   Hooks

	viewMu  sync.Mutex
	display *snapshot.Snapshot
}

// New returns a Session over an empty graph with no goal.
func New(opts ...Option) *Session {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		graph:     core.NewGraph(),
		goal:      core.NoNode,
		rng:       o.Rand,
		randomize: o.RandomizeWeights,
		history:   history.New(),
		log:       o.Logger,
		metrics:   o.Metrics,
		hooks:     o.Hooks,
	}

	ropts := []runner.Option{
		runner.WithHistory(s.history),
		runner.WithStepDelay(o.StepDelay),
		runner.WithLogger(o.Logger),
		runner.WithMetrics(o.Metrics),
		runner.WithHooks(s.controllerHooks()),
	}
	if o.Scheduler != nil {
		ropts = append(ropts, runner.WithScheduler(o.Scheduler))
	}
	s.ctrl = runner.NewController(ropts...)

	return s
}

// Close cancels any run and releases the controller's scheduler.
func (s *Session) Close() {
	s.ctrl.Close()
}

func (s *Session) controllerHooks() runner.Hooks {
	return runner.Hooks{
		OnStep: func(st runner.Step) {
			s.setView(st.Snapshot)
			if s.hooks.OnStep != nil {
				s.hooks.OnStep(st)
			}
		},
		OnLog: func(msg string) {
			if s.hooks.OnLog != nil {
				s.hooks.OnLog(msg)
			}
		},
		OnFinish: func(out runner.Outcome) {
			if out.Result.Status == search.StatusCancelled {
				s.setView(nil)
			}
			if s.hooks.OnFinish != nil {
				s.hooks.OnFinish(out)
			}
		},
	}
}

func (s *Session) setView(snap *snapshot.Snapshot) {
	s.viewMu.Lock()
	defer s.viewMu.Unlock()

	s.display = snap
}

// View returns the snapshot currently displayed: the latest recorded step
// of a live run, or the step selected by navigation. It is nil when
// nothing is displayed, e.g. after a cancel.
func (s *Session) View() *snapshot.Snapshot {
	s.viewMu.Lock()
	defer s.viewMu.Unlock()

	return s.display
}

// Overlay projects View onto the live graph. With nothing displayed every
// node gets a blank overlay carrying only the current heuristic.
func (s *Session) Overlay() ([]snapshot.NodeState, error) {
	view := s.View()

	s.mu.Lock()
	defer s.mu.Unlock()

	if view != nil {
		return snapshot.Apply(view, s.graph)
	}

	ids := s.graph.Nodes()
	out := make([]snapshot.NodeState, len(ids))
	for i, id := range ids {
		out[i] = snapshot.NodeState{ID: id}
		if s.heuristics != nil {
			out[i].Heuristic, out[i].HasHeuristic = s.heuristics.Of(id)
		}
	}

	return out, nil
}

// Graph returns a copy of the live graph.
func (s *Session) Graph() *core.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graph.Clone()
}

// History exposes the step store for read access and navigation-free
// inspection. Use the Session navigation methods to move the cursor.
func (s *Session) History() *history.Store { return s.history }

// Messages returns the run's message log, "Algorithm Stopped." included.
func (s *Session) Messages() []string { return s.ctrl.Messages() }

// Running reports whether a run is emitting steps.
func (s *Session) Running() bool { return s.ctrl.Running() }

// StepDelay returns the current per-step delay.
func (s *Session) StepDelay() time.Duration { return s.ctrl.StepDelay() }

// SetStepDelay changes the delay of every step not yet scheduled.
func (s *Session) SetStepDelay(d time.Duration) error {
	if err := s.ctrl.SetStepDelay(d); err != nil {
		return err
	}
	s.log.Debug("step delay changed", slog.Duration("delay", d))

	return nil
}

// RandomizeWeights reports whether AddNode draws random link weights.
func (s *Session) RandomizeWeights() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.randomize
}

// SetRandomizeWeights toggles random link weights for AddNode.
func (s *Session) SetRandomizeWeights(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.randomize = on
}

// interrupt cancels any run, optionally clears history, and drops the
// displayed snapshot. Callers must not hold mu.
func (s *Session) interrupt(clearHistory bool) {
	s.ctrl.Cancel()
	if clearHistory {
		s.history.Clear()
	}
	s.setView(nil)
}

// announce delivers a heuristic change. Callers must not hold mu.
func (s *Session) announce(t *heuristic.Table) {
	if t == nil || s.hooks.OnHeuristics == nil {
		return
	}
	s.hooks.OnHeuristics(*t)
}
