// SPDX-License-Identifier: MIT

// Package config holds the run configuration of ternclique: defaults, an
// optional YAML file, environment overrides, and validation.
//
// Precedence, lowest first: Default() → YAML file → TERNCLIQUE_* environment
// → command-line flags (applied by the caller before Validate).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ternclique/clique"
	"github.com/katalvlaran/ternclique/dictfile"
)

// Sentinel configuration errors. All of them are fatal and are reported
// before any input is read.
var (
	// ErrInvalidLength is returned for a vector length outside AllowedLengths.
	ErrInvalidLength = errors.New("config: invalid vector length")

	// ErrNegativeCap is returned for a maximum number of entries that is
	// negative or not an integer at all.
	ErrNegativeCap = errors.New("config: max entries must be a non-negative integer")

	// ErrBadWorkers is returned for a worker count below 1.
	ErrBadWorkers = errors.New("config: workers must be >= 1")

	// ErrUnknownStrategy, ErrUnknownFormat, ErrUnknownPolicy and
	// ErrUnknownLogLevel reject unrecognised enum names.
	ErrUnknownStrategy = errors.New("config: unknown strategy")
	ErrUnknownFormat   = errors.New("config: unknown output format")
	ErrUnknownPolicy   = errors.New("config: unknown malformed-record policy")
	ErrUnknownLogLevel = errors.New("config: unknown log level")
)

// Environment variable names read by ApplyEnv.
const (
	EnvWorkers     = "TERNCLIQUE_WORKERS"
	EnvLogLevel    = "TERNCLIQUE_LOG_LEVEL"
	EnvLogFormat   = "TERNCLIQUE_LOG_FORMAT"
	EnvMetricsFile = "TERNCLIQUE_METRICS_FILE"
)

// DefaultAllowedLengths are the vector lengths the tool accepts by default.
var DefaultAllowedLengths = []int{8, 16, 32, 64}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Config is the full run configuration.
type Config struct {
	Input          string        `yaml:"input"`
	Output         string        `yaml:"output"`
	MaxEntries     int           `yaml:"max_entries"`
	VectorLength   int           `yaml:"vector_length"`
	AllowedLengths []int         `yaml:"allowed_lengths"`
	Strategy       string        `yaml:"strategy"`     // greedy, max-degree
	Format         string        `yaml:"format"`       // templates, members
	OnMalformed    string        `yaml:"on_malformed"` // fail, skip
	Workers        int           `yaml:"workers"`
	MetricsFile    string        `yaml:"metrics_file"`
	Logging        LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AllowedLengths: slices.Clone(DefaultAllowedLengths),
		Strategy:       clique.Greedy.String(),
		Format:         dictfile.Templates.String(),
		OnMalformed:    dictfile.Fail.String(),
		Workers:        1,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML file over Default() and then applies the environment.
// A missing file is not an error: defaults (plus environment) are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv overrides fields from TERNCLIQUE_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrBadWorkers, EnvWorkers, v)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		c.MetricsFile = v
	}

	return nil
}

// Validate checks every field that can be checked without touching files.
func (c *Config) Validate() error {
	if !slices.Contains(c.AllowedLengths, c.VectorLength) {
		return fmt.Errorf("%w: %d (must be one of %v)", ErrInvalidLength, c.VectorLength, c.AllowedLengths)
	}
	if c.MaxEntries < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCap, c.MaxEntries)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, c.Workers)
	}
	if _, err := c.StrategyValue(); err != nil {
		return err
	}
	if _, err := c.FormatValue(); err != nil {
		return err
	}
	if _, err := c.PolicyValue(); err != nil {
		return err
	}

	return c.ValidateLogging()
}

// ValidateLogging checks the logging section alone, so the logger can be
// built before the rest of the configuration is complete.
func (c *Config) ValidateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.Logging.Level)
	}

	return nil
}

// StrategyValue parses Strategy.
func (c *Config) StrategyValue() (clique.Strategy, error) {
	s, err := clique.ParseStrategy(c.Strategy)
	if err != nil {
		return s, fmt.Errorf("%w: %q", ErrUnknownStrategy, c.Strategy)
	}

	return s, nil
}

// FormatValue parses Format.
func (c *Config) FormatValue() (dictfile.Format, error) {
	f, err := dictfile.ParseFormat(c.Format)
	if err != nil {
		return f, fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}

	return f, nil
}

// PolicyValue parses OnMalformed.
func (c *Config) PolicyValue() (dictfile.Policy, error) {
	p, err := dictfile.ParsePolicy(c.OnMalformed)
	if err != nil {
		return p, fmt.Errorf("%w: %q", ErrUnknownPolicy, c.OnMalformed)
	}

	return p, nil
}
