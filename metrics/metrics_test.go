// SPDX-License-Identifier: MIT
package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchlab/metrics"
)

func TestRecorder_Lifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	rec.RecordRunStarted("bfs")
	rec.RecordStep("bfs")
	rec.RecordStep("bfs")
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.ActiveRuns))

	rec.RecordRunFinished("bfs", "goal_found", 250*time.Millisecond)
	rec.RecordValidationFailure("astar")

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsStarted.WithLabelValues("bfs")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.StepsEmitted.WithLabelValues("bfs")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsFinished.WithLabelValues("bfs", "goal_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.ValidationFailures.WithLabelValues("astar")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.ActiveRuns))

	n, err := testutil.GatherAndCount(reg, "searchlab_runner_run_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var rec *metrics.Recorder
	assert.NotPanics(t, func() {
		rec.RecordRunStarted("dfs")
		rec.RecordStep("dfs")
		rec.RecordRunFinished("dfs", "cancelled", time.Second)
		rec.RecordValidationFailure("dfs")
	})
}

func TestDefault_IsSingleton(t *testing.T) {
	assert.Same(t, metrics.Default(), metrics.Default())
}
