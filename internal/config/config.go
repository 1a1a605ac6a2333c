// Package config loads runtime configuration from environment variables,
// with an optional .env file picked up from the working directory.
package config

import (
	"os"
	"strconv"

	"evinsight/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	// OutputDir is where chart PNGs and the text report are written
	OutputDir string
	// TopN is the number of categories shown per categorical bar chart
	TopN int
	// HistBins is the histogram bin count for distribution plots
	HistBins int
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		OutputDir: ".",
		TopN:      10,
		HistBins:  30,
	}
}

// Load reads configuration from environment variables and validates it.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	// Best effort; absence of a .env file is not an error
	_ = godotenv.Load()

	cfg := Default()

	if dir := os.Getenv("EDA_OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}
	if v := os.Getenv("EDA_TOP_N"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, errors.ConfigInvalid("EDA_TOP_N must be a positive integer")
		}
		cfg.TopN = n
	}
	if v := os.Getenv("EDA_HIST_BINS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, errors.ConfigInvalid("EDA_HIST_BINS must be a positive integer")
		}
		cfg.HistBins = n
	}

	return cfg, nil
}
