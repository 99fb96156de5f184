package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elonfeng/subradar/pkg/subriff"
)

// Config is the root configuration.
type Config struct {
	API   APIConfig   `yaml:"api"`
	Blend BlendConfig `yaml:"blend"`
}

// APIConfig configures the subriff.com client.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// ParseTimeout returns the request timeout as time.Duration.
func (a APIConfig) ParseTimeout() time.Duration {
	d, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// BlendConfig configures the aggregation and selection pipeline.
// NSFW filtering is deliberately not configurable.
type BlendConfig struct {
	SizeFilters     []string `yaml:"size_filters"`
	SortPeriods     []string `yaml:"sort_periods"`
	ResultsPerQuery int      `yaml:"results_per_query"`
	TopPerCategory  int      `yaml:"top_per_category"`
	FinalLimit      int      `yaml:"final_limit"`
}

// Default returns a Config matching the live subriff API.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "https://subriff.com",
			Timeout: "30s",
		},
		Blend: BlendConfig{
			SizeFilters: []string{
				subriff.SizeMediumSmall, subriff.SizeMedium,
				subriff.SizeLarge, subriff.SizeXLarge,
			},
			SortPeriods:     []string{subriff.SortDaily, subriff.SortWeekly},
			ResultsPerQuery: 20,
			TopPerCategory:  5,
			FinalLimit:      30,
		},
	}
}

// Load reads configuration from a YAML file and applies env var
// overrides. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides overrides config values with environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SUBRADAR_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
}
