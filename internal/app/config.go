package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// CatalogPath is an optional YAML course catalog; empty means the built-in courses
	CatalogPath string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// ConfigFromEnv creates a configuration from environment variables,
// loading a .env file from the working directory first when one exists.
// Reads COURSECARDS_DEBUG and COURSECARDS_CATALOG.
func ConfigFromEnv() *Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if debugStr := os.Getenv("COURSECARDS_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if path := os.Getenv("COURSECARDS_CATALOG"); path != "" {
		cfg.CatalogPath = path
	}

	return cfg
}
