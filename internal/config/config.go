// Package config loads the process-wide flags the phi containers and the
// search driver consume. Values come from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"gophi/domain/core"
	"gophi/domain/phi"
)

// Config represents the complete runtime configuration.
type Config struct {
	// Precision is the absolute tolerance for phi comparisons.
	Precision float64
	// ReadableStrings switches String methods to multi-line rendering.
	ReadableStrings bool
	// SingleNodesWithSelfLoopsHavePhi assigns a fixed nonzero phi to a
	// single-node subsystem with a self-loop instead of computing one.
	SingleNodesWithSelfLoopsHavePhi bool
	// DatabaseURL is the optional result-store DSN.
	DatabaseURL string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Precision:                       phi.DefaultPrecision,
		ReadableStrings:                 false,
		SingleNodesWithSelfLoopsHavePhi: false,
	}
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() (Config, error) {
	// Ignore a missing .env; the environment alone is fine.
	_ = godotenv.Load()

	cfg := Default()

	if raw := os.Getenv("GOPHI_PRECISION"); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, core.NewValidationError("GOPHI_PRECISION",
				fmt.Sprintf("not a number: %q", raw))
		}
		if p <= 0 {
			return Config{}, core.NewValidationError("GOPHI_PRECISION",
				fmt.Sprintf("must be positive, got %g", p))
		}
		cfg.Precision = p
	}

	cfg.ReadableStrings = getEnvBoolOrDefault("GOPHI_READABLE_STRINGS", cfg.ReadableStrings)
	cfg.SingleNodesWithSelfLoopsHavePhi = getEnvBoolOrDefault(
		"GOPHI_SINGLE_NODES_WITH_SELFLOOPS_HAVE_PHI", cfg.SingleNodesWithSelfLoopsHavePhi)
	cfg.DatabaseURL = os.Getenv("GOPHI_DATABASE_URL")

	return cfg, nil
}

// Apply pushes the flags into the phi package. Call once at startup,
// before any containers are compared or rendered.
func (c Config) Apply() {
	phi.SetPrecision(c.Precision)
	phi.SetReadable(c.ReadableStrings)
}

func getEnvBoolOrDefault(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return b
}
