// Package config loads the YAML run configuration for the stringproc CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives one CLI run. Flags given explicitly on the command line
// override values loaded from a file.
type Config struct {
	// Input is a path to a JSON telemetry envelope; empty selects the built-in
	// sample batch.
	Input string `yaml:"input"`
	// Debug enables per-step records on the diagnostic sink.
	Debug bool `yaml:"debug"`
	// Collect reports every invalid entry instead of stopping at the first.
	Collect bool `yaml:"collect"`
	// MaxBytes caps total input size; zero disables the cap.
	MaxBytes int64 `yaml:"maxBytes"`
}

// Load reads and validates a YAML config file.
func Load(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if c.MaxBytes < 0 {
		return c, fmt.Errorf("config: maxBytes must not be negative (got %d)", c.MaxBytes)
	}
	return c, nil
}
