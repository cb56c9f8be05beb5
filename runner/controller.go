// SPDX-License-Identifier: MIT
//
// File: controller.go
// Role: Controller: Start/Cancel/SetStepDelay and the per-fire step pump.
// Determinism:
//   - Events are recorded in exactly the order the stepper emits them.
// Concurrency:
//   - mu guards the active run, the message log and the generation counter.
//   - The stepper is only touched under mu.
//   - Hooks run after mu is released.

package runner

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/searchlab/history"
	"github.com/katalvlaran/searchlab/metrics"
	"github.com/katalvlaran/searchlab/search"
)

var tracer = otel.Tracer("searchlab.runner")

// run is the state of the active run.
type run struct {
	id      uuid.UUID
	gen     uint64
	stepper search.Stepper
	pending []search.Event
	failure error
	handle  Handle
	steps   int
	started time.Time
	span    trace.Span
	log     *slog.Logger
}

// Controller drives one search run at a time through a Scheduler.
type Controller struct {
	mu       sync.Mutex
	sched    Scheduler
	owned    *TimerScheduler
	history  *history.Store
	log      *slog.Logger
	metrics  *metrics.Recorder
	hooks    Hooks
	delay    atomic.Int64
	gen      uint64
	active   *run
	messages []string
	closed   bool
}

// NewController builds a Controller from opts.
func NewController(opts ...Option) *Controller {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller{
		sched:   o.Scheduler,
		history: o.History,
		log:     o.Logger,
		metrics: o.Metrics,
		hooks:   o.Hooks,
	}
	if c.sched == nil {
		c.owned = NewTimerScheduler()
		c.sched = c.owned
	}
	if c.history == nil {
		c.history = history.New()
	}
	c.delay.Store(int64(o.Delay))

	return c
}

// History returns the store the Controller records into.
func (c *Controller) History() *history.Store { return c.history }

// StepDelay returns the current per-step delay.
func (c *Controller) StepDelay() time.Duration {
	return time.Duration(c.delay.Load())
}

// SetStepDelay changes the delay for every step scheduled from now on.
// Steps already scheduled keep their time.
func (c *Controller) SetStepDelay(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDelay, d)
	}
	c.delay.Store(int64(d))

	return nil
}

// SetHooks replaces the hooks for subsequent deliveries.
func (c *Controller) SetHooks(h Hooks) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hooks = h
}

// Running reports whether a run is active.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.active != nil
}

// RunID returns the id of the active run.
func (c *Controller) RunID() (uuid.UUID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return uuid.Nil, false
	}

	return c.active.id, true
}

// Messages returns the message log: every recorded step message plus any
// StoppedMessage entries, in order. Start clears it.
func (c *Controller) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.messages)
}

// Start cancels any active run, clears history and the message log, and
// schedules the first step of s immediately. ctx parents the run's span.
//
// Replacing the previous run and installing the new one happen under one
// lock, so concurrent Starts each finish the run they displace. The first
// step is scheduled only after the displaced run's hooks are delivered.
func (c *Controller) Start(ctx context.Context, s search.Stepper) (uuid.UUID, error) {
	if s == nil {
		return uuid.Nil, ErrNilStepper
	}
	if s.Done() {
		return uuid.Nil, ErrStepperDone
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return uuid.Nil, ErrControllerDone
	}
	prev, stopped := c.cancelLocked()
	c.history.Clear()
	c.messages = nil
	c.gen++

	res := s.Result()
	r := &run{
		id:      uuid.New(),
		gen:     c.gen,
		stepper: s,
		started: time.Now(),
	}
	r.log = c.log.With(
		slog.String("run_id", r.id.String()),
		slog.String("algorithm", s.Algorithm().String()),
	)
	_, r.span = tracer.Start(ctx, "runner.Run", trace.WithAttributes(
		attribute.String("run.id", r.id.String()),
		attribute.String("search.algorithm", s.Algorithm().String()),
		attribute.Int("search.start", res.Start),
		attribute.Int("search.goal", res.Goal),
	))
	c.active = r
	c.metrics.RecordRunStarted(s.Algorithm().String())
	hooks := c.hooks
	c.mu.Unlock()

	if stopped {
		deliverStopped(hooks, prev)
	}
	r.log.Info("run started",
		slog.Int("start", res.Start),
		slog.Int("goal", res.Goal),
		slog.Duration("delay", c.StepDelay()),
	)

	c.mu.Lock()
	if c.active == r {
		gen := r.gen
		r.handle = c.sched.Schedule(0, func() { c.fire(gen) })
	}
	c.mu.Unlock()

	return r.id, nil
}

// Cancel stops the active run. Pending steps never fire, the stepper is
// cancelled and StoppedMessage is logged. On an idle Controller it does
// nothing and returns false.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	out, stopped := c.cancelLocked()
	hooks := c.hooks
	c.mu.Unlock()

	if stopped {
		deliverStopped(hooks, out)
	}

	return stopped
}

// cancelLocked finishes the active run, if any. Caller holds mu and
// delivers the returned outcome through deliverStopped after unlocking.
func (c *Controller) cancelLocked() (Outcome, bool) {
	r := c.active
	if r == nil {
		return Outcome{}, false
	}
	if r.handle != 0 {
		c.sched.Cancel(r.handle)
		r.handle = 0
	}
	r.stepper.Cancel()
	r.pending = nil
	c.messages = append(c.messages, StoppedMessage)

	return c.finishLocked(r), true
}

func deliverStopped(hooks Hooks, out Outcome) {
	if hooks.OnLog != nil {
		hooks.OnLog(StoppedMessage)
	}
	if hooks.OnFinish != nil {
		hooks.OnFinish(out)
	}
}

// Close cancels the active run and stops the scheduler if the Controller
// created it. Later Starts fail with ErrControllerDone.
func (c *Controller) Close() {
	c.mu.Lock()
	out, stopped := c.cancelLocked()
	c.closed = true
	hooks := c.hooks
	c.mu.Unlock()

	if stopped {
		deliverStopped(hooks, out)
	}
	if c.owned != nil {
		c.owned.Stop()
	}
}

// fire records the next event of run gen and schedules the one after it.
func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	r := c.active
	if r == nil || r.gen != gen {
		c.mu.Unlock()

		return
	}
	r.handle = 0

	if len(r.pending) == 0 && !r.stepper.Done() {
		tick, err := r.stepper.Step()
		r.pending = append(r.pending, tick.Events...)
		if err != nil {
			r.failure = err
		}
	}

	var (
		step    Step
		emitted bool
	)
	if len(r.pending) > 0 {
		ev := r.pending[0]
		r.pending = r.pending[1:]
		idx := c.history.Record(ev.Message, ev.Snapshot)
		c.messages = append(c.messages, ev.Message)
		r.steps++
		r.span.AddEvent("step", trace.WithAttributes(attribute.Int("step.index", idx)))
		step = Step{RunID: r.id, Index: idx, Message: ev.Message, Snapshot: ev.Snapshot}
		emitted = true
	}

	var (
		out      Outcome
		finished bool
	)
	if len(r.pending) == 0 && (r.stepper.Done() || r.failure != nil) {
		out = c.finishLocked(r)
		finished = true
	} else {
		r.handle = c.sched.Schedule(c.StepDelay(), func() { c.fire(gen) })
	}
	hooks := c.hooks
	c.mu.Unlock()

	if emitted {
		c.metrics.RecordStep(r.stepper.Algorithm().String())
		if hooks.OnStep != nil {
			hooks.OnStep(step)
		}
		if hooks.OnLog != nil {
			hooks.OnLog(step.Message)
		}
	}
	if finished && hooks.OnFinish != nil {
		hooks.OnFinish(out)
	}
}

// finishLocked detaches r and closes its span. Caller holds mu.
func (c *Controller) finishLocked(r *run) Outcome {
	c.active = nil

	res := r.stepper.Result()
	dur := time.Since(r.started)
	status := res.Status.String()

	r.span.SetAttributes(
		attribute.String("search.status", status),
		attribute.Int("run.steps", r.steps),
		attribute.Int("search.path_len", len(res.Path)),
	)
	if r.failure != nil {
		r.span.RecordError(r.failure)
		r.span.SetStatus(codes.Error, r.failure.Error())
		r.log.Error("run failed", slog.String("status", status), slog.Any("error", r.failure))
	} else {
		r.span.SetStatus(codes.Ok, "")
		r.log.Info("run finished",
			slog.String("status", status),
			slog.Int("steps", r.steps),
			slog.Duration("elapsed", dur),
		)
	}
	r.span.End()
	c.metrics.RecordRunFinished(r.stepper.Algorithm().String(), status, dur)

	return Outcome{
		RunID:    r.id,
		Result:   res,
		Steps:    r.steps,
		Duration: dur,
		Err:      r.failure,
	}
}
