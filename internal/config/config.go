package config

import (
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const envPrefix = "collbench"

// Config represents the benchmark configuration structure
type Config struct {
	Environment      string  `default:"development"`
	Operations       int     `default:"100000"`
	Seed             int64   `default:"1"`
	MapBuckets       int     `default:"10" split_words:"true"`
	MapThreshold     float64 `default:"0.75" split_words:"true"`
	ProgressInterval int     `default:"250" split_words:"true"` // milliseconds
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	config := new(Config)
	if err := envconfig.Process(envPrefix, config); err != nil {
		return nil, errors.Wrap(err, "could not process environment")
	}
	return config, nil
}

// IsEnvProduction checks whether the configured environment is production
func (cfg *Config) IsEnvProduction() bool {
	return cfg.Environment == "prod" || cfg.Environment == "production"
}

// Validate returns every invalid field, or nil
func (cfg *Config) Validate() error {
	var result *multierror.Error

	if cfg.Operations < 0 {
		result = multierror.Append(result, errors.Errorf("operations must not be negative, got %d", cfg.Operations))
	}

	if cfg.MapBuckets <= 0 {
		result = multierror.Append(result, errors.Errorf("map buckets must be positive, got %d", cfg.MapBuckets))
	}

	if !(cfg.MapThreshold > 0) || math.IsInf(cfg.MapThreshold, 1) {
		result = multierror.Append(result, errors.Errorf("map threshold must be a finite positive number, got %v", cfg.MapThreshold))
	}

	if cfg.ProgressInterval <= 0 {
		result = multierror.Append(result, errors.Errorf("progress interval must be positive, got %d", cfg.ProgressInterval))
	}

	return result.ErrorOrNil()
}
