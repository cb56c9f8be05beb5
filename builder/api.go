// SPDX-License-Identifier: MIT
// Package: searchlab/builder
//
// api.go — public entry points for graph construction.
//
// Contract:
//   • Constructor is the unit of composition: func(g, cfg) error.
//   • BuildGraph creates a fresh graph and applies constructors in order.
//   • Apply runs a single constructor against an existing (live) graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/searchlab/core"
)

// Constructor populates g according to cfg. Implementations validate their
// parameters first and must leave g untouched on error.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph and applies each constructor in order.
// The first failing constructor aborts the build.
//
// Complexity: sum of the constructors' costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph g with the resolved options.
// This is how a session regenerates its live graph in place.
func Apply(g *core.Graph, cons Constructor, bopts ...BuilderOption) error {
	if g == nil {
		return fmt.Errorf("%s: %w", MethodBuildGraph, core.ErrGraphNil)
	}
	if cons == nil {
		return fmt.Errorf("%s: nil constructor: %w", MethodBuildGraph, ErrConstructFailed)
	}

	return cons(g, newBuilderConfig(bopts...))
}
