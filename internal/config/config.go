// Package config handles lapbench configuration from files, environment
// variables, and command-line flags.
package config

import (
	"fmt"
	"strings"
)

// Config represents the complete configuration for the lapbench CLI.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Sort benchmark settings
	Sort SortConfig `mapstructure:"sort" yaml:"sort" json:"sort"`
}

// SortConfig contains settings for the sort benchmark command.
type SortConfig struct {
	// Rounds is the number of size-doubling rounds.
	Rounds int `mapstructure:"rounds" yaml:"rounds" json:"rounds"`

	// InitialSize is the array size before the first doubling.
	InitialSize int `mapstructure:"initial_size" yaml:"initial_size" json:"initial_size"`

	// Runs is the number of timed repetitions per measurement.
	Runs int `mapstructure:"runs" yaml:"runs" json:"runs"`

	// MaxValue is the exclusive upper bound for generated integers.
	MaxValue int `mapstructure:"max_value" yaml:"max_value" json:"max_value"`

	// Seed for the data generator. Zero means seed from the current time.
	Seed int64 `mapstructure:"seed" yaml:"seed" json:"seed"`

	// Output is an optional path for a YAML results file.
	Output string `mapstructure:"output" yaml:"output" json:"output"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Verbose:  false,
		Sort: SortConfig{
			Rounds:      10,
			InitialSize: 20,
			Runs:        30,
			MaxValue:    1000,
			Seed:        0,
			Output:      "",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.Sort.Rounds < 1 {
		return fmt.Errorf("invalid sort.rounds: %d (must be at least 1)", c.Sort.Rounds)
	}
	if c.Sort.InitialSize < 1 {
		return fmt.Errorf("invalid sort.initial_size: %d (must be at least 1)", c.Sort.InitialSize)
	}
	if c.Sort.Runs < 1 {
		return fmt.Errorf("invalid sort.runs: %d (must be at least 1)", c.Sort.Runs)
	}
	if c.Sort.MaxValue < 1 {
		return fmt.Errorf("invalid sort.max_value: %d (must be at least 1)", c.Sort.MaxValue)
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
