// Package config loads the optional converter YAML config. Everything
// has a working default; command line flags override config values.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type MetricsConfig struct {
	// Enable prints a counter snapshot after the run.
	Enable bool `yaml:"enable"`
}

type Config struct {
	// Timezone is the IANA zone all timestamps are rendered in,
	// regardless of the device's zone.
	Timezone string `yaml:"timezone"`
	// Fields overrides the default CSV column list.
	Fields []string `yaml:"fields"`
	// ScanAll disables the early exit that relies on the export being
	// sorted newest-first.
	ScanAll bool          `yaml:"scan_all"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Timezone: "Europe/Vienna"}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	if c.Timezone == "" {
		c.Timezone = Default().Timezone
	}
	return c, nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
