// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Controller options, hooks, Step/Outcome records and sentinel errors.

package runner

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/searchlab/history"
	"github.com/katalvlaran/searchlab/metrics"
	"github.com/katalvlaran/searchlab/search"
	"github.com/katalvlaran/searchlab/snapshot"
)

// StoppedMessage is appended to the message log when an active run is
// cancelled. It has no snapshot and is not a history step.
const StoppedMessage = "Algorithm Stopped."

// DefaultStepDelay matches the visualiser's initial slider position.
const DefaultStepDelay = 500 * time.Millisecond

// Sentinel errors.
var (
	ErrNilStepper     = errors.New("runner: nil stepper")
	ErrStepperDone    = errors.New("runner: stepper already finished")
	ErrNegativeDelay  = errors.New("runner: negative step delay")
	ErrControllerDone = errors.New("runner: controller closed")
)

// Step is one recorded event as delivered to OnStep.
type Step struct {
	RunID    uuid.UUID
	Index    int
	Message  string
	Snapshot *snapshot.Snapshot
}

// Outcome is the terminal report of a run, delivered to OnFinish.
// Err is non-nil only when the stepper failed (search.StatusFailed).
type Outcome struct {
	RunID    uuid.UUID
	Result   search.Result
	Steps    int
	Duration time.Duration
	Err      error
}

// Hooks receive run output. Any field may be nil.
type Hooks struct {
	OnStep   func(Step)
	OnLog    func(message string)
	OnFinish func(Outcome)
}

// Options configures a Controller.
type Options struct {
	// Scheduler paces steps. When nil the Controller starts its own
	// TimerScheduler and stops it on Close.
	Scheduler Scheduler
	// History receives every step. When nil a fresh Store is used.
	History *history.Store
	// Delay is the initial step delay.
	Delay   time.Duration
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	Hooks   Hooks
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: own TimerScheduler, fresh history,
// DefaultStepDelay, discard logger, no metrics.
func DefaultOptions() Options {
	return Options{
		Delay:  DefaultStepDelay,
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithScheduler sets the scheduler. Panics on nil.
func WithScheduler(s Scheduler) Option {
	if s == nil {
		panic("runner: WithScheduler(nil)")
	}
	return func(o *Options) { o.Scheduler = s }
}

// WithHistory sets the history store. Panics on nil.
func WithHistory(h *history.Store) Option {
	if h == nil {
		panic("runner: WithHistory(nil)")
	}
	return func(o *Options) { o.History = h }
}

// WithStepDelay sets the initial delay. Panics on a negative delay.
func WithStepDelay(d time.Duration) Option {
	if d < 0 {
		panic("runner: WithStepDelay negative")
	}
	return func(o *Options) { o.Delay = d }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("runner: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics sets the metrics recorder (nil disables metrics).
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = r }
}

// WithHooks sets the hooks.
func WithHooks(h Hooks) Option {
	return func(o *Options) { o.Hooks = h }
}
