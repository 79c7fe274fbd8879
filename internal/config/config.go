// Package config loads run parameters for the gridsearch command.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridsearch/crucible"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all tunable parameters.
type Config struct {
	Crucible CrucibleConfig `yaml:"crucible"`
	Beam     BeamConfig     `yaml:"beam"`
	Garden   GardenConfig   `yaml:"garden"`
}

// CrucibleConfig holds the run limits for both carts.
type CrucibleConfig struct {
	Normal RunConfig `yaml:"normal"`
	Ultra  RunConfig `yaml:"ultra"`
}

// RunConfig mirrors crucible.Rules.
type RunConfig struct {
	MinRun int `yaml:"min_run"`
	MaxRun int `yaml:"max_run"`
}

// Rules converts r to crucible.Rules.
func (r RunConfig) Rules() crucible.Rules {
	return crucible.Rules{MinRun: r.MinRun, MaxRun: r.MaxRun}
}

// BeamConfig controls the parallel edge sweep.
type BeamConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// GardenConfig holds the step budget.
type GardenConfig struct {
	Steps int `yaml:"steps"`
}

// Default returns the hardcoded defaults, identical to the embedded default.yaml.
func Default() Config {
	return Config{
		Crucible: CrucibleConfig{
			Normal: RunConfig{MinRun: 0, MaxRun: 3},
			Ultra:  RunConfig{MinRun: 4, MaxRun: 10},
		},
		Beam:   BeamConfig{Workers: 0},
		Garden: GardenConfig{Steps: 64},
	}
}

// Load reads configuration.
// Search order: customPath -> embedded default.
// Keys missing from a custom file keep their default values.
func Load(customPath string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		cfg = Default() // fallback to hardcoded if embed fails
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	for _, r := range []struct {
		name string
		run  RunConfig
	}{
		{"normal", c.Crucible.Normal},
		{"ultra", c.Crucible.Ultra},
	} {
		if err := r.run.Rules().Validate(); err != nil {
			return fmt.Errorf("%w: crucible.%s: %v", ErrInvalid, r.name, err)
		}
	}
	if c.Beam.Workers < 0 {
		return fmt.Errorf("%w: beam.workers=%d", ErrInvalid, c.Beam.Workers)
	}
	if c.Garden.Steps < 0 {
		return fmt.Errorf("%w: garden.steps=%d", ErrInvalid, c.Garden.Steps)
	}
	return nil
}
