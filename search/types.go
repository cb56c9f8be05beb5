// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Algorithm and Status enums, Event/Tick/Result, the Stepper protocol,
//       options and sentinel errors.

package search

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/searchlab/heuristic"
	"github.com/katalvlaran/searchlab/snapshot"
)

// Sentinel errors returned by New, Step and Drive.
var (
	ErrUnknownAlgorithm  = errors.New("search: unknown algorithm")
	ErrStartNotFound     = errors.New("search: start node not found")
	ErrGoalNotFound      = errors.New("search: goal node not found")
	ErrGoalRequired      = errors.New("search: a goal node is required")
	ErrNotFullyWeighted  = errors.New("search: graph must be fully weighted")
	ErrNegativeWeight    = errors.New("search: negative link weight")
	ErrStaleHeuristics   = errors.New("search: heuristics not computed for goal")
	ErrBrokenParentChain = errors.New("search: broken parent chain")
	ErrFinished          = errors.New("search: stepper already finished")
)

// Algorithm selects a traversal strategy.
type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	UCS
	AStar
)

// String returns the lower-case identifier used in configs and flags.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case UCS:
		return "ucs"
	case AStar:
		return "astar"
	}

	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Label is the prefix used in step messages ("BFS", "A*", ...).
func (a Algorithm) Label() string {
	if a == AStar {
		return "A*"
	}

	return strings.ToUpper(a.String())
}

// Weighted reports whether the algorithm requires a fully weighted graph.
func (a Algorithm) Weighted() bool {
	return a == UCS || a == AStar
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm. Accepted:
// bfs, dfs, ucs, astar, a*, a-star.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "ucs":
		return UCS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Status is the lifecycle state of a run.
type Status int

const (
	// StatusIdle means no step has been taken yet.
	StatusIdle Status = iota
	// StatusRunning means the search may still produce steps.
	StatusRunning
	// StatusGoalFound is terminal: the goal was expanded and a path built.
	StatusGoalFound
	// StatusExhausted is terminal: the frontier emptied without the goal.
	StatusExhausted
	// StatusCancelled is terminal: an external stop discarded the frontier.
	StatusCancelled
	// StatusFailed is terminal: an internal invariant broke.
	StatusFailed
)

// String returns a snake_case name suitable for logs and metrics labels.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusGoalFound:
		return "goal_found"
	case StatusExhausted:
		return "exhausted"
	case StatusCancelled:
		return "cancelled"
	case StatusFailed:
		return "failed"
	}

	return fmt.Sprintf("status(%d)", int(s))
}

// Terminal reports whether no further steps can follow.
func (s Status) Terminal() bool {
	return s >= StatusGoalFound
}

// Event is one log message plus the snapshot captured when it was produced.
type Event struct {
	Message  string
	Snapshot *snapshot.Snapshot
}

// Tick is the output of one Step: the events in emission order and the
// status after the step.
type Tick struct {
	Events []Event
	Status Status
}

// Result summarizes a run. Path is nil unless Status is StatusGoalFound.
type Result struct {
	Algorithm Algorithm
	Status    Status
	Start     int
	Goal      int
	Path      []int

	// Cost is the path cost for UCS/A*; HasCost is false for BFS/DFS.
	Cost    float64
	HasCost bool

	Expanded []int
	Parents  map[int]int
	Events   int
}

// Stepper is a resumable search. Step must not be called after Done
// reports true; doing so returns ErrFinished.
type Stepper interface {
	Algorithm() Algorithm
	Step() (Tick, error)
	Done() bool
	// Cancel ends the run with StatusCancelled if it is still running.
	Cancel()
	Result() Result
}

// Options configures New.
type Options struct {
	// Heuristics supplies A* estimates; also copied into snapshots for the
	// other algorithms when present.
	Heuristics *heuristic.Table

	// Logger receives debug lines per step and an error line on failure.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns options with no heuristics and a discard logger.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithHeuristics attaches a heuristic table. The table is copied.
func WithHeuristics(t heuristic.Table) Option {
	return func(o *Options) {
		c := t.Clone()
		o.Heuristics = &c
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}
