// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Recorder collectors and the Record* helpers.

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "searchlab"

// Recorder owns the run-level collectors.
type Recorder struct {
	RunsStarted        *prometheus.CounterVec
	RunsFinished       *prometheus.CounterVec
	StepsEmitted       *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	RunDuration        *prometheus.HistogramVec
	ActiveRuns         prometheus.Gauge
}

// New registers a fresh set of collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		RunsStarted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "runner",
			Name:      "runs_started_total",
			Help:      "Search runs started, by algorithm",
		}, []string{"algorithm"}),
		RunsFinished: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "runner",
			Name:      "runs_finished_total",
			Help:      "Search runs finished, by algorithm and terminal status",
		}, []string{"algorithm", "status"}),
		StepsEmitted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "runner",
			Name:      "steps_emitted_total",
			Help:      "Step events recorded into history, by algorithm",
		}, []string{"algorithm"}),
		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "validation_failures_total",
			Help:      "Run requests rejected before start, by algorithm",
		}, []string{"algorithm"}),
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "runner",
			Name:      "run_duration_seconds",
			Help:      "Wall time from run start to terminal status",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"algorithm", "status"}),
		ActiveRuns: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "runner",
			Name:      "active_runs",
			Help:      "Runs currently emitting steps",
		}),
	}
}

var (
	defaultOnce sync.Once
	defaultRec  *Recorder
)

// Default returns the Recorder registered on prometheus.DefaultRegisterer.
func Default() *Recorder {
	defaultOnce.Do(func() {
		defaultRec = New(prometheus.DefaultRegisterer)
	})

	return defaultRec
}

// RecordRunStarted counts a run that passed validation.
func (r *Recorder) RecordRunStarted(algorithm string) {
	if r == nil {
		return
	}
	r.RunsStarted.WithLabelValues(algorithm).Inc()
	r.ActiveRuns.Inc()
}

// RecordStep counts one recorded step event.
func (r *Recorder) RecordStep(algorithm string) {
	if r == nil {
		return
	}
	r.StepsEmitted.WithLabelValues(algorithm).Inc()
}

// RecordRunFinished counts a terminal run and observes its duration.
func (r *Recorder) RecordRunFinished(algorithm, status string, d time.Duration) {
	if r == nil {
		return
	}
	r.RunsFinished.WithLabelValues(algorithm, status).Inc()
	r.RunDuration.WithLabelValues(algorithm, status).Observe(d.Seconds())
	r.ActiveRuns.Dec()
}

// RecordValidationFailure counts a run request rejected before start.
func (r *Recorder) RecordValidationFailure(algorithm string) {
	if r == nil {
		return
	}
	r.ValidationFailures.WithLabelValues(algorithm).Inc()
}
