// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix prefixes every environment override, e.g.
// ATSP_SOLVER_TIME_LIMIT=30s or ATSP_LOG_LEVEL=debug.
const DefaultEnvPrefix = "ATSP_"

// Loader merges configuration sources into a Config.
type Loader struct {
	k          *koanf.Koanf
	configFile string
	envPrefix  string
	overrides  map[string]any
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigFile sets a YAML file to load. A missing file is an error.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.configFile = path
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithOverrides sets dotted keys (e.g. "solver.max_nodes") that win over
// every other source. The command passes explicitly set flags here.
func WithOverrides(values map[string]any) LoaderOption {
	return func(l *Loader) {
		l.overrides = values
	}
}

// NewLoader creates a loader with the default env prefix and no file.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges, in increasing priority:
//  1. Defaults
//  2. Config file (YAML), when set
//  3. Environment variables
//  4. Overrides
//
// and validates the result.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if l.configFile != "" {
		if err := l.k.Load(file.Provider(l.configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", l.configFile, err)
		}
	}
	if err := l.k.Load(env.ProviderWithValue(l.envPrefix, ".", l.envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	if len(l.overrides) > 0 {
		if err := l.k.Load(confmap.Provider(l.overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("load overrides: %w", err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps ATSP_SECTION_FIELD_NAME to section.field_name: the first
// underscore after the prefix separates the section, the rest belong to the
// field.
func (l *Loader) envKey(envKey, value string) (string, interface{}) {
	key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))

	return strings.Replace(key, "_", ".", 1), value
}

// Defaults returns the built-in configuration as dotted keys.
func Defaults() map[string]any {
	return map[string]any{
		"solver.start_vertex":   0,
		"solver.time_limit":     "0s",
		"solver.max_nodes":      0,
		"solver.seed":           true,
		"solver.polish":         true,
		"solver.verify":         false,
		"solver.progress_every": 10000,

		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.file_path":   "",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,

		"metrics.enabled":   true,
		"metrics.namespace": "atsp",
		"metrics.textfile":  "",
	}
}
