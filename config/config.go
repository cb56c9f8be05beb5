// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Config schema, defaults, Parse and Validate.

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/search"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Defaults for omitted keys.
const (
	DefaultStepDelayMs = 500
	DefaultNodeCount   = 10
	DefaultAlgorithm   = "bfs"
	DefaultLogLevel    = "info"
)

// Config is the file schema. Pointer fields distinguish "omitted" from a
// meaningful zero.
type Config struct {
	StepDelayMs      *int   `yaml:"step_delay_ms"`
	NodeCount        int    `yaml:"node_count"`
	Weighted         bool   `yaml:"weighted"`
	RandomizeWeights bool   `yaml:"randomize_weights"`
	Seed             *int64 `yaml:"seed"`
	Algorithm        string `yaml:"algorithm"`
	Start            int    `yaml:"start"`
	Goal             *int   `yaml:"goal"`
	LogLevel         string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Parse decodes YAML and applies defaults. It does not validate.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.StepDelayMs == nil {
		d := DefaultStepDelayMs
		c.StepDelayMs = &d
	}
	if c.NodeCount == 0 {
		c.NodeCount = DefaultNodeCount
	}
	if c.Algorithm == "" {
		c.Algorithm = DefaultAlgorithm
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate reports every problem at once, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []string

	if c.StepDelayMs != nil && *c.StepDelayMs < 0 {
		errs = append(errs, fmt.Sprintf("step_delay_ms must be >= 0, got %d", *c.StepDelayMs))
	}
	if c.NodeCount < 1 {
		errs = append(errs, fmt.Sprintf("node_count must be >= 1, got %d", c.NodeCount))
	}
	alg, err := search.ParseAlgorithm(c.Algorithm)
	if err != nil {
		errs = append(errs, fmt.Sprintf("algorithm %q is not one of bfs, dfs, ucs, astar", c.Algorithm))
	} else {
		if alg.Weighted() && !c.Weighted {
			errs = append(errs, fmt.Sprintf("algorithm %s needs weighted: true", alg))
		}
		if alg == search.AStar && c.Goal == nil {
			errs = append(errs, "algorithm astar needs a goal")
		}
	}
	if c.Start < 0 || c.Start >= c.NodeCount {
		errs = append(errs, fmt.Sprintf("start %d outside [0, %d)", c.Start, c.NodeCount))
	}
	if c.Goal != nil && (*c.Goal < 0 || *c.Goal >= c.NodeCount) {
		errs = append(errs, fmt.Sprintf("goal %d outside [0, %d)", *c.Goal, c.NodeCount))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}

// StepDelay returns step_delay_ms as a duration.
func (c *Config) StepDelay() time.Duration {
	if c.StepDelayMs == nil {
		return DefaultStepDelayMs * time.Millisecond
	}

	return time.Duration(*c.StepDelayMs) * time.Millisecond
}

// SearchAlgorithm parses the algorithm name.
func (c *Config) SearchAlgorithm() (search.Algorithm, error) {
	return search.ParseAlgorithm(c.Algorithm)
}

// GoalID returns the goal, or core.NoNode when unset.
func (c *Config) GoalID() int {
	if c.Goal == nil {
		return core.NoNode
	}

	return *c.Goal
}

// Level returns log_level as a slog level; unknown names map to Info.
func (c *Config) Level() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}

	return lvl
}

func parseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q is not one of debug, info, warn, error", name)
	}

	return lvl, nil
}
