// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchlab/config"
	"github.com/katalvlaran/searchlab/search"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_InstantBFS(t *testing.T) {
	out, err := execute(t, "run", "--nodes", "6", "--seed", "3", "--goal", "5", "--instant")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "BFS: Root Node 0\n"))
	assert.Contains(t, out, "BFS: Goal Node 5 found!")
	assert.Contains(t, out, "status: goal_found")
	assert.Contains(t, out, "path: 0 -> ")
}

func TestRun_PacedUCS(t *testing.T) {
	out, err := execute(t, "run", "-a", "ucs", "-w", "-n", "8", "--seed", "11", "--goal", "7", "--delay", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "UCS: Expanding node [0] with cost 0.")
	assert.Contains(t, out, "status: goal_found")
	assert.Contains(t, out, "cost: ")
}

func TestRun_PacedMatchesInstant(t *testing.T) {
	args := []string{"run", "-a", "dfs", "-n", "9", "--seed", "5", "--goal", "4"}
	paced, err := execute(t, append(args, "--delay", "0")...)
	require.NoError(t, err)
	instant, err := execute(t, append(args, "--instant")...)
	require.NoError(t, err)
	assert.Equal(t, instant, paced)
}

func TestRun_Rejections(t *testing.T) {
	_, err := execute(t, "run", "-a", "ucs", "--instant")
	assert.ErrorIs(t, err, config.ErrInvalidConfig, "ucs needs weighted")

	_, err = execute(t, "run", "-a", "astar", "-w", "--instant")
	assert.ErrorIs(t, err, config.ErrInvalidConfig, "astar needs a goal")

	_, err = execute(t, "run", "-n", "3", "--start", "7")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_ConfigFileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searchlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
node_count: 7
weighted: true
seed: 9
algorithm: astar
goal: 6
step_delay_ms: 0
log_level: error
`), 0o644))

	out, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "A*: Expanding node 0")
	assert.Contains(t, out, "status: goal_found")

	out, err = execute(t, "run", "--config", path, "-a", "bfs", "--instant")
	require.NoError(t, err)
	assert.Contains(t, out, "BFS: Root Node 0")
}

func TestGraph_PrintsStructure(t *testing.T) {
	out, err := execute(t, "graph", "-n", "5", "--seed", "2", "-w", "--goal", "4")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "nodes: 5 links: "))
	assert.Contains(t, out, "node 4 degree=")
	assert.Contains(t, out, "h=0")
}

func TestResolve_LoaderLogsThroughCLILogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searchlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("node_count: 5\nlog_level: info\n"), 0o644))

	c := &cli{configPath: path}
	cmd := &cobra.Command{}
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)
	require.NoError(t, c.resolve(cmd, nil))
	require.NotNil(t, c.loader)

	require.NoError(t, os.WriteFile(path, []byte("node_count: 6\nlog_level: info\n"), 0o644))
	_, err := c.loader.Reload()
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "config reloaded")
}

func TestRun_AddNodeHonoursRandomizeWeights(t *testing.T) {
	args := []string{"run", "-a", "ucs", "-w", "-n", "6", "--seed", "4", "--goal", "5", "--add-node", "0,2", "--instant"}

	_, err := execute(t, args...)
	assert.ErrorIs(t, err, search.ErrNotFullyWeighted, "unweighted links from --add-node")

	out, err := execute(t, append(args, "--randomize-weights")...)
	require.NoError(t, err)
	assert.Contains(t, out, "status: goal_found")
}

func TestGraph_AddNode(t *testing.T) {
	out, err := execute(t, "graph", "-n", "4", "--seed", "1", "-w", "--add-node", "0,2", "--add-node", "", "--randomize-weights")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "nodes: 6 links: "))
	assert.Contains(t, out, "node 4 degree=2 neighbors=[0 2]")
	assert.Contains(t, out, "node 5 degree=0 neighbors=[]")

	_, err = execute(t, "graph", "-n", "4", "--add-node", "0,x")
	assert.Error(t, err)
}
