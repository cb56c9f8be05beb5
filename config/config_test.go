// SPDX-License-Identifier: MIT
package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchlab/config"
	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/search"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 500*time.Millisecond, cfg.StepDelay())
	assert.Equal(t, config.DefaultNodeCount, cfg.NodeCount)
	assert.Equal(t, core.NoNode, cfg.GoalID())
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	alg, err := cfg.SearchAlgorithm()
	require.NoError(t, err)
	assert.Equal(t, search.BFS, alg)
	assert.Nil(t, cfg.Seed)
}

func TestParse_FullFile(t *testing.T) {
	cfg, err := config.Parse([]byte(`
step_delay_ms: 0
node_count: 12
weighted: true
randomize_weights: true
seed: 42
algorithm: A*
start: 3
goal: 7
log_level: debug
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, time.Duration(0), cfg.StepDelay(), "explicit zero delay survives defaults")
	assert.Equal(t, 12, cfg.NodeCount)
	assert.True(t, cfg.Weighted)
	assert.True(t, cfg.RandomizeWeights)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	alg, err := cfg.SearchAlgorithm()
	require.NoError(t, err)
	assert.Equal(t, search.AStar, alg)
	assert.Equal(t, 3, cfg.Start)
	assert.Equal(t, 7, cfg.GoalID())
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestParse_Malformed(t *testing.T) {
	_, err := config.Parse([]byte("node_count: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"negative delay":     "step_delay_ms: -5",
		"negative nodes":     "node_count: -1",
		"unknown algorithm":  "algorithm: dijkstra",
		"weighted needed":    "algorithm: ucs",
		"astar needs goal":   "algorithm: astar\nweighted: true",
		"start out of range": "node_count: 3\nstart: 3",
		"goal out of range":  "node_count: 3\ngoal: -2",
		"bad log level":      "log_level: loud",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(doc))
			require.NoError(t, err)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg, err := config.Parse([]byte("step_delay_ms: -1\nalgorithm: nope\nlog_level: loud"))
	require.NoError(t, err)
	err = cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "step_delay_ms")
	assert.Contains(t, err.Error(), "algorithm")
	assert.Contains(t, err.Error(), "log_level")
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoader_ReloadAndCallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searchlab.yaml")
	writeFile(t, path, "step_delay_ms: 100\n")

	l, err := config.NewLoader(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, l.Path())
	assert.Equal(t, 100*time.Millisecond, l.Config().StepDelay())

	var got []time.Duration
	l.OnChange(func(c *config.Config) { got = append(got, c.StepDelay()) })

	writeFile(t, path, "step_delay_ms: 250\n")
	cfg, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.StepDelay())
	assert.Equal(t, []time.Duration{250 * time.Millisecond}, got)

	writeFile(t, path, "step_delay_ms: -3\n")
	_, err = l.Reload()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, 250*time.Millisecond, l.Config().StepDelay(), "invalid reload keeps the old config")
	assert.Len(t, got, 1)
}

func TestNewLoader_Errors(t *testing.T) {
	_, err := config.NewLoader(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "algorithm: nope\n")
	_, err = config.NewLoader(path, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoader_WatchPicksUpWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searchlab.yaml")
	writeFile(t, path, "step_delay_ms: 100\n")

	l, err := config.NewLoader(path, nil)
	require.NoError(t, err)
	changed := make(chan time.Duration, 8)
	l.OnChange(func(c *config.Config) { changed <- c.StepDelay() })

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	writeFile(t, path, "step_delay_ms: 900\n")
	deadline := time.After(5 * time.Second)
	for {
		select {
		case d := <-changed:
			if d == 900*time.Millisecond {
				assert.Equal(t, d, l.Config().StepDelay())
				stop()
				stop()
				return
			}
		case <-deadline:
			t.Fatal("watcher did not report the rewrite")
		}
	}
}

func TestLoader_SetLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searchlab.yaml")
	writeFile(t, path, "step_delay_ms: 100\n")

	l, err := config.NewLoader(path, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	l.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	writeFile(t, path, "step_delay_ms: 200\n")
	_, err = l.Reload()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "config reloaded")

	buf.Reset()
	l.SetLogger(nil)
	_, err = l.Reload()
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestWatch_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searchlab.yaml")
	writeFile(t, path, "node_count: 4\n")
	l, err := config.NewLoader(path, nil)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	_, err = l.Watch()
	assert.Error(t, err)
}
