// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchlab/config"
	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/session"
)

// cli carries the flags and the state resolved before a subcommand runs.
type cli struct {
	configPath string
	logLevel   string

	nodes     int
	weighted  bool
	randomize bool
	addNodes  []string
	seed      int64
	algorithm string
	start     int
	goal      int
	delayMs   int
	instant   bool
	watch     bool

	loader *config.Loader
	cfg    *config.Config
	log    *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "searchlab",
		Short: "Step-by-step graph search engine",
		Long: `searchlab generates random connected graphs and runs BFS, DFS,
UCS or A* over them, printing every recorded step.

Settings come from a YAML file (--config) and can be overridden by flags.

Examples:
  searchlab graph --nodes 8 --seed 3
  searchlab run --algorithm ucs --weighted --nodes 12 --goal 7
  searchlab run --config searchlab.yaml --watch`,
		SilenceUsage:      true,
		PersistentPreRunE: c.resolve,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(c.newRunCmd(), c.newGraphCmd())

	return root
}

// graphFlags registers the flags shared by run and graph.
func (c *cli) graphFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&c.nodes, "nodes", "n", config.DefaultNodeCount, "number of nodes to generate")
	cmd.Flags().BoolVarP(&c.weighted, "weighted", "w", false, "give every generated link a weight")
	cmd.Flags().Int64Var(&c.seed, "seed", 0, "RNG seed (default: time based)")
	cmd.Flags().IntVar(&c.goal, "goal", -1, "goal node id (-1 for none)")
	cmd.Flags().BoolVar(&c.randomize, "randomize-weights", false, "weight links created by --add-node with a random integer in [1,20]")
	cmd.Flags().StringArrayVar(&c.addNodes, "add-node", nil,
		"after generation, add a node linked to the comma-separated parent ids (repeatable)")
}

// buildGraph generates the configured graph into s, applies --add-node in
// order and selects the goal.
func (c *cli) buildGraph(s *session.Session) error {
	if err := s.Generate(c.cfg.NodeCount, c.cfg.Weighted); err != nil {
		return err
	}
	for _, spec := range c.addNodes {
		parents, err := parseIDs(spec)
		if err != nil {
			return fmt.Errorf("--add-node %q: %w", spec, err)
		}
		s.AddNode(parents)
	}
	if goal := c.cfg.GoalID(); goal != core.NoNode {
		return s.SetGoal(goal)
	}

	return nil
}

// parseIDs reads "0,3,5" into ids; an empty string adds an isolated node.
func parseIDs(list string) ([]int, error) {
	var ids []int
	for _, f := range strings.Split(list, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// resolve loads the config file, overlays explicitly set flags, validates
// the result and installs the logger.
func (c *cli) resolve(cmd *cobra.Command, _ []string) error {
	var err error
	if c.configPath != "" {
		c.loader, err = config.NewLoader(c.configPath, nil)
		if err != nil {
			return err
		}
		cfg := *c.loader.Config()
		c.cfg = &cfg
	} else {
		c.cfg = config.Default()
	}
	c.overlay(cmd)
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	c.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: c.cfg.Level()}))
	slog.SetDefault(c.log)
	if c.loader != nil {
		c.loader.SetLogger(c.log)
	}

	return nil
}

// overlay copies flags the user actually set onto the config.
func (c *cli) overlay(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.cfg.LogLevel = c.logLevel
	}
	if flags.Changed("nodes") {
		c.cfg.NodeCount = c.nodes
	}
	if flags.Changed("weighted") {
		c.cfg.Weighted = c.weighted
	}
	if flags.Changed("randomize-weights") {
		c.cfg.RandomizeWeights = c.randomize
	}
	if flags.Changed("seed") {
		seed := c.seed
		c.cfg.Seed = &seed
	}
	if flags.Changed("algorithm") {
		c.cfg.Algorithm = c.algorithm
	}
	if flags.Changed("start") {
		c.cfg.Start = c.start
	}
	if flags.Changed("goal") {
		if c.goal < 0 {
			c.cfg.Goal = nil
		} else {
			goal := c.goal
			c.cfg.Goal = &goal
		}
	}
	if flags.Changed("delay") {
		delay := c.delayMs
		c.cfg.StepDelayMs = &delay
	}
}
