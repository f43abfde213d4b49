package main

import (
	"os"

	// Auto-load a .env file if present; real environment variables take
	// precedence over file values.
	_ "github.com/joho/godotenv/autoload"
)

// appConfig holds the environment-derived defaults. Flags override it.
type appConfig struct {
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string

	// SuitePath optionally points at a YAML suite manifest.
	SuitePath string
}

// loadConfig reads configuration from environment variables.
func loadConfig() appConfig {
	return appConfig{
		LogLevel:  getEnv("PATTERNS_LOG_LEVEL", "info"),
		SuitePath: getEnv("PATTERNS_SUITE", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
