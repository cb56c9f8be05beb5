// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

func (c *cli) newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate a graph and print it",
		Long: `Generate a random connected graph and print its links, node degrees
and, when --goal is set, the heuristic of every node. --add-node appends
nodes after generation; with --randomize-weights their links are weighted.`,
		Args: cobra.NoArgs,
		RunE: c.graph,
	}
	c.graphFlags(cmd)

	return cmd
}

func (c *cli) graph(cmd *cobra.Command, _ []string) error {
	s := c.newSession()
	defer s.Close()
	if err := c.buildGraph(s); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	g := s.Graph()
	fmt.Fprintf(out, "nodes: %d links: %d\n", g.NodeCount(), g.LinkCount())
	for _, l := range g.Links() {
		fmt.Fprintf(out, "  %d - %d  %s\n", l.Source, l.Target, l.Weight)
	}

	table, hasTable := s.Heuristics()
	for _, id := range g.Nodes() {
		deg, err := g.Degree(id)
		if err != nil {
			return err
		}
		nbrs, _ := g.Neighbors(id)
		slices.Sort(nbrs)
		line := fmt.Sprintf("node %d degree=%d neighbors=%v", id, deg, nbrs)
		if hasTable {
			h, _ := table.Of(id)
			line += fmt.Sprintf(" h=%g", h)
		}
		fmt.Fprintln(out, line)
	}

	return nil
}
