// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Session options, hooks and sentinel errors.

package session

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/searchlab/heuristic"
	"github.com/katalvlaran/searchlab/metrics"
	"github.com/katalvlaran/searchlab/runner"
)

// ErrEmptyGraph is returned by RandomGoal on a graph without nodes.
var ErrEmptyGraph = errors.New("session: graph has no nodes")

// Randomised link weights drawn by AddNode are integers in [1, 20].
const (
	RandomWeightLo = 1
	RandomWeightHi = 20
)

// Hooks receive session output. Any field may be nil.
type Hooks struct {
	// OnStep fires for every recorded step.
	OnStep func(runner.Step)
	// OnLog fires for every log line, step messages and "Algorithm Stopped.".
	OnLog func(message string)
	// OnFinish fires once per run with its terminal state.
	OnFinish func(runner.Outcome)
	// OnHeuristics fires when the heuristic table changes. An Empty table
	// with Goal core.NoNode means the goal was cleared.
	OnHeuristics func(heuristic.Table)
}

// Options configures New.
type Options struct {
	Rand             *rand.Rand
	StepDelay        time.Duration
	Scheduler        runner.Scheduler
	Logger           *slog.Logger
	Metrics          *metrics.Recorder
	RandomizeWeights bool
	Hooks            Hooks
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a time-seeded RNG, runner.DefaultStepDelay, the
// controller's own timer scheduler, a discard logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		StepDelay: runner.DefaultStepDelay,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithSeed makes graph generation, random goals and random weights
// reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand sets the RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("session: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithStepDelay sets the initial step delay. Panics on a negative delay.
func WithStepDelay(d time.Duration) Option {
	if d < 0 {
		panic("session: WithStepDelay negative")
	}
	return func(o *Options) { o.StepDelay = d }
}

// WithScheduler sets the run scheduler. Panics on nil.
func WithScheduler(s runner.Scheduler) Option {
	if s == nil {
		panic("session: WithScheduler(nil)")
	}
	return func(o *Options) { o.Scheduler = s }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = r }
}

// WithRandomizeWeights sets the initial randomize-weights flag for AddNode.
func WithRandomizeWeights(on bool) Option {
	return func(o *Options) { o.RandomizeWeights = on }
}

// WithHooks sets the hooks.
func WithHooks(h Hooks) Option {
	return func(o *Options) { o.Hooks = h }
}
