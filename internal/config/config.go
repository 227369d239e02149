// Package config reads application configuration from the environment,
// with an optional .env file for development.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port          string
	StoragePath   string
	SessionSecret string
	SessionTTL    time.Duration
	LogLevel      string
	LogFormat     string
}

// Load reads configuration from a .env file (if present) and environment
// variables, falling back to development defaults.
func Load() *Config {
	// Missing .env is fine; real env vars win either way
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PLANNA_PORT", "8080"),
		StoragePath:   getEnv("PLANNA_DB_PATH", "planna.db"),
		SessionSecret: getEnv("PLANNA_SESSION_SECRET", "dev-only-secret"),
		SessionTTL:    30 * 24 * time.Hour,
		LogLevel:      getEnv("PLANNA_LOG_LEVEL", "info"),
		LogFormat:     getEnv("PLANNA_LOG_FORMAT", "text"),
	}
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
