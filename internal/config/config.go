// Package config loads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Strategy     string        // Default search strategy ("dfs" or "bfs")
	LogLevel     string        // debug, info, warn or error
	LogFormat    string        // text or json
	Addr         string        // Listen address for the HTTP server
	BaseURL      string        // Route prefix for the HTTP API
	GinMode      string        // Mode for the Gin framework (release, debug, test)
	SolveTimeout time.Duration // Upper bound on a single API solve
	MaxBodyBytes int64         // Upper bound on an API request body
}

// Defaults returns the configuration used when no variable is set.
func Defaults() Config {
	return Config{
		Strategy:     "bfs",
		LogLevel:     "info",
		LogFormat:    "text",
		Addr:         ":8080",
		BaseURL:      "/api",
		GinMode:      "release",
		SolveTimeout: 5 * time.Second,
		MaxBodyBytes: 1 << 20,
	}
}

// Load reads .env files (if any) and then the MAZE_* environment variables.
// Missing variables fall back to Defaults; malformed ones are errors.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug(".env file not found or could not be loaded", "error", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Defaults()
	cfg.Strategy = getEnvWithDefault("MAZE_STRATEGY", cfg.Strategy)
	cfg.LogLevel = strings.ToLower(getEnvWithDefault("MAZE_LOG_LEVEL", cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(getEnvWithDefault("MAZE_LOG_FORMAT", cfg.LogFormat))
	cfg.Addr = getEnvWithDefault("MAZE_ADDR", cfg.Addr)
	cfg.BaseURL = getEnvWithDefault("MAZE_BASE_URL", cfg.BaseURL)
	cfg.GinMode = getEnvWithDefault("MAZE_GIN_MODE", cfg.GinMode)

	if v, ok := os.LookupEnv("MAZE_SOLVE_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("config: MAZE_SOLVE_TIMEOUT must be a positive duration, got %q", v)
		}
		cfg.SolveTimeout = d
	}
	if v, ok := os.LookupEnv("MAZE_MAX_BODY_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("config: MAZE_MAX_BODY_BYTES must be a positive integer, got %q", v)
		}
		cfg.MaxBodyBytes = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config: invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
