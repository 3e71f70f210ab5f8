// Package config handles loading and managing Readyscope configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/readyscope/readyscope/pkg/scoring"
)

// Config is the top-level configuration for Readyscope.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Case    CaseConfig    `yaml:"case"`
}

// ScoringConfig controls scoring behavior.
type ScoringConfig struct {
	Weights map[string]float64 `yaml:"weights"` // dimension key -> weight override
	Bands   []scoring.Band     `yaml:"bands"`   // descending; empty means defaults
}

// CaseConfig controls business-case generation.
type CaseConfig struct {
	DiscountRate float64 `yaml:"discount_rate"` // NPV discount rate, e.g. 0.10
	Industry     string  `yaml:"industry"`      // default industry when the profile omits one
	Budget       float64 `yaml:"budget"`        // default investment budget
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Weights: map[string]float64{},
		},
		Case: CaseConfig{
			DiscountRate: 0.10,
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Case.DiscountRate <= 0 {
		cfg.Case.DiscountRate = 0.10
	}

	return cfg, nil
}

// FindConfigFile looks for .readyscope/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".readyscope", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// EngineOptions converts the config into scoring engine options.
func (c *Config) EngineOptions() []scoring.Option {
	var opts []scoring.Option
	if len(c.Scoring.Weights) > 0 {
		opts = append(opts, scoring.WithWeights(c.Scoring.Weights))
	}
	if len(c.Scoring.Bands) > 0 {
		opts = append(opts, scoring.WithBands(c.Scoring.Bands))
	}
	return opts
}
