package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// measureConfig is the profile of a measure run, read from YAML.
type measureConfig struct {
	Size        int     `yaml:"size"`         // values inserted per step
	Steps       int     `yaml:"steps"`        // number of steps
	Seed        int64   `yaml:"seed"`         // seed of the value generator
	RemoveRatio float64 `yaml:"remove_ratio"` // share of a step's insertions removed again in the same step
}

var defaultMeasureConfig = measureConfig{
	Size:        1 << 12,
	Steps:       16,
	Seed:        0,
	RemoveRatio: 0.25,
}

// loadMeasureConfig reads the profile at path over the defaults. An empty path
// gives the defaults.
func loadMeasureConfig(path string) (measureConfig, error) {
	config := defaultMeasureConfig
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

func (c measureConfig) validate() error {
	var errs []error
	if c.Size <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got %d", c.Size))
	}
	if c.Steps <= 0 {
		errs = append(errs, fmt.Errorf("steps must be positive, got %d", c.Steps))
	}
	if c.RemoveRatio < 0 || c.RemoveRatio > 1 {
		errs = append(errs, fmt.Errorf("remove_ratio must be within [0,1], got %g", c.RemoveRatio))
	}
	return errors.Join(errs...)
}
