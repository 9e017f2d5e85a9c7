// Package config loads the CLI configuration from a YAML file with
// environment overrides. Builder parameters stay per-call values; this file
// only seeds them for one invocation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full tool configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Chart   ChartConfig   `yaml:"chart"`
}

// LoggingConfig controls the zerolog output
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Pretty bool   `yaml:"pretty"` // console writer instead of JSON
}

// ChartConfig seeds the per-call analysis parameters
type ChartConfig struct {
	SizeMode      string  `yaml:"size_mode"` // auto or explicit
	BrickSize     float64 `yaml:"brick_size"`
	KagiReversal  float64 `yaml:"kagi_reversal"`
	BoxSize       float64 `yaml:"box_size"`
	BoxFraction   float64 `yaml:"box_fraction"`
	ReversalBoxes int     `yaml:"reversal_boxes"`
	PivotWindow   int     `yaml:"pivot_window"`
	VolumeWindow  int     `yaml:"volume_window"`
	LegacyRenko   bool    `yaml:"legacy_renko_reversal"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Chart: ChartConfig{
			SizeMode:      "auto",
			BoxFraction:   0.5,
			ReversalBoxes: 3,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if os.Getenv("LOG_PRETTY") == "true" {
		c.Logging.Pretty = true
	}
	if v := os.Getenv("CHART_SIZE_MODE"); v != "" {
		c.Chart.SizeMode = v
	}
}
