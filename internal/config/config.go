// SPDX-License-Identifier: MIT

// Package config holds the atsp command configuration and its loader.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete command configuration.
type Config struct {
	Solver  SolverConfig  `koanf:"solver"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// SolverConfig maps onto tsp.Options.
type SolverConfig struct {
	StartVertex   int           `koanf:"start_vertex"`
	TimeLimit     time.Duration `koanf:"time_limit"` // 0 = unlimited
	MaxNodes      int           `koanf:"max_nodes"`  // 0 = unlimited
	Seed          bool          `koanf:"seed"`       // nearest-neighbour incumbent
	Polish        bool          `koanf:"polish"`     // 3-opt* on the seed
	Verify        bool          `koanf:"verify"`     // cross-check with Held–Karp when small enough
	ProgressEvery int           `koanf:"progress_every"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig configures internal/metrics.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
	TextFile  string `koanf:"textfile"` // Prometheus textfile-collector output; empty = none
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Solver.StartVertex < 0:
		return fmt.Errorf("solver.start_vertex=%d: %w", c.Solver.StartVertex, ErrInvalid)
	case c.Solver.TimeLimit < 0:
		return fmt.Errorf("solver.time_limit=%v: %w", c.Solver.TimeLimit, ErrInvalid)
	case c.Solver.MaxNodes < 0:
		return fmt.Errorf("solver.max_nodes=%d: %w", c.Solver.MaxNodes, ErrInvalid)
	case c.Solver.ProgressEvery < 0:
		return fmt.Errorf("solver.progress_every=%d: %w", c.Solver.ProgressEvery, ErrInvalid)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level=%q: %w", c.Log.Level, ErrInvalid)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format=%q: %w", c.Log.Format, ErrInvalid)
	}
	switch c.Log.Output {
	case "stdout", "stderr":
	case "file":
		if c.Log.FilePath == "" {
			return fmt.Errorf("log.file_path is required for file output: %w", ErrInvalid)
		}
	default:
		return fmt.Errorf("log.output=%q: %w", c.Log.Output, ErrInvalid)
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics.namespace is required: %w", ErrInvalid)
	}

	return nil
}
