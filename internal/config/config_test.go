package config

import (
	"testing"

	"evinsight/internal/errors"
)

// TestDefault tests the built-in configuration values
func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.OutputDir != "." {
		t.Errorf("Expected output dir '.', got %q", cfg.OutputDir)
	}
	if cfg.TopN != 10 {
		t.Errorf("Expected TopN 10, got %d", cfg.TopN)
	}
	if cfg.HistBins != 30 {
		t.Errorf("Expected HistBins 30, got %d", cfg.HistBins)
	}
}

// TestLoadOverrides tests environment variable overrides
func TestLoadOverrides(t *testing.T) {
	t.Setenv("EDA_OUTPUT_DIR", "/tmp/eda")
	t.Setenv("EDA_TOP_N", "15")
	t.Setenv("EDA_HIST_BINS", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.OutputDir != "/tmp/eda" {
		t.Errorf("Expected /tmp/eda, got %q", cfg.OutputDir)
	}
	if cfg.TopN != 15 {
		t.Errorf("Expected TopN 15, got %d", cfg.TopN)
	}
	if cfg.HistBins != 50 {
		t.Errorf("Expected HistBins 50, got %d", cfg.HistBins)
	}
}

// TestLoadRejectsBadValues tests validation of numeric variables
func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"EDA_TOP_N":     "zero",
		"EDA_HIST_BINS": "-3",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if errors.GetCode(err) != errors.CodeConfigInvalid {
				t.Errorf("Expected CONFIG_INVALID, got %s", errors.GetCode(err))
			}
		})
	}
}
