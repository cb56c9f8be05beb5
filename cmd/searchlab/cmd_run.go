// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchlab/config"
	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/heuristic"
	"github.com/katalvlaran/searchlab/metrics"
	"github.com/katalvlaran/searchlab/runner"
	"github.com/katalvlaran/searchlab/search"
	"github.com/katalvlaran/searchlab/session"
	"github.com/katalvlaran/searchlab/snapshot"
)

func (c *cli) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a graph and run a search over it",
		Long: `Generate a random connected graph and run the selected algorithm,
printing each step when it is recorded. Steps are paced by --delay unless
--instant is given. Ctrl-C stops the run ("Algorithm Stopped.").

With --config and --watch, edits to step_delay_ms in the file apply to
the running search.`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}
	c.graphFlags(cmd)
	cmd.Flags().StringVarP(&c.algorithm, "algorithm", "a", config.DefaultAlgorithm, "bfs, dfs, ucs or astar")
	cmd.Flags().IntVar(&c.start, "start", 0, "start node id")
	cmd.Flags().IntVar(&c.delayMs, "delay", config.DefaultStepDelayMs, "delay between steps in milliseconds")
	cmd.Flags().BoolVar(&c.instant, "instant", false, "run to completion without pacing")
	cmd.Flags().BoolVar(&c.watch, "watch", false, "hot-reload step_delay_ms from --config")

	return cmd
}

func (c *cli) newSession(extra ...session.Option) *session.Session {
	opts := []session.Option{
		session.WithLogger(c.log),
		session.WithStepDelay(c.cfg.StepDelay()),
		session.WithRandomizeWeights(c.cfg.RandomizeWeights),
		session.WithMetrics(metrics.Default()),
	}
	if c.cfg.Seed != nil {
		opts = append(opts, session.WithSeed(*c.cfg.Seed))
	}

	return session.New(append(opts, extra...)...)
}

func (c *cli) run(cmd *cobra.Command, _ []string) error {
	alg, err := c.cfg.SearchAlgorithm()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if c.instant {
		return c.runInstant(ctx, out, alg)
	}

	finished := make(chan runner.Outcome, 1)
	s := c.newSession(session.WithHooks(session.Hooks{
		OnLog: func(msg string) { fmt.Fprintln(out, msg) },
		OnFinish: func(o runner.Outcome) {
			select {
			case finished <- o:
			default:
			}
		},
	}))
	defer s.Close()

	if err := c.buildGraph(s); err != nil {
		return err
	}
	if c.watch && c.loader != nil {
		c.loader.OnChange(func(cfg *config.Config) {
			if err := s.SetStepDelay(cfg.StepDelay()); err != nil {
				c.log.Warn("step delay not applied", slog.Any("error", err))
			}
		})
		stopWatch, err := c.loader.Watch()
		if err != nil {
			c.log.Warn("config watcher unavailable", slog.Any("error", err))
		} else {
			defer stopWatch()
		}
	}

	if _, err := s.RunToGoal(ctx, alg, c.cfg.Start); err != nil {
		return err
	}

	var o runner.Outcome
	select {
	case o = <-finished:
	case <-ctx.Done():
		s.Cancel()
		o = <-finished
	}
	printSummary(out, o.Result, s.View())

	return o.Err
}

// runInstant drives the stepper synchronously with search.Drive.
func (c *cli) runInstant(ctx context.Context, out io.Writer, alg search.Algorithm) error {
	s := c.newSession()
	defer s.Close()
	if err := c.buildGraph(s); err != nil {
		return err
	}
	g := s.Graph()
	goal := c.cfg.GoalID()

	opts := []search.Option{search.WithLogger(c.log)}
	if goal != core.NoNode {
		table, err := heuristic.Compute(g, goal)
		if err != nil {
			return err
		}
		opts = append(opts, search.WithHeuristics(table))
	}
	st, err := search.New(alg, g, c.cfg.Start, goal, opts...)
	if err != nil {
		return err
	}

	var last *snapshot.Snapshot
	res, err := search.Drive(ctx, st, func(ev search.Event) {
		fmt.Fprintln(out, ev.Message)
		last = ev.Snapshot
	})
	printSummary(out, res, last)

	return err
}

func printSummary(w io.Writer, res search.Result, last *snapshot.Snapshot) {
	fmt.Fprintf(w, "status: %s\n", res.Status)
	if res.Path != nil {
		fmt.Fprintf(w, "path: %s\n", joinIDs(res.Path))
	}
	if res.HasCost {
		fmt.Fprintf(w, "cost: %s\n", strconv.FormatFloat(res.Cost, 'f', -1, 64))
	}
	fmt.Fprintf(w, "expanded: %d\n", len(res.Expanded))
	if last == nil {
		return
	}
	st := last.Stats()
	fmt.Fprintf(w, "discovered: %d\n", st.NodesDiscovered)
	if st.HasDepth {
		fmt.Fprintf(w, "depth: %d\n", st.CurrentDepth)
	}
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " -> ")
}
