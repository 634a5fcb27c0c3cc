// Package config provides configuration structures and loading for the fuel price logger.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the fuel price logger.
type Config struct {
	// Tankerkoenig API key
	APIKey string
	// Tankerkoenig API base URL
	BaseURL string
	// PostgreSQL connection string
	PostgresDSN string
	// Log level (debug, info, warn, error)
	LogLevel string
	// Log format (json, console)
	LogFormat string
	// HTTP server address
	HTTPAddr string
	// Station IDs to log prices for
	StationIDs []string
	// Fuel types to log (diesel, e5, e10)
	FuelTypes []string
	// Fetch interval in minutes
	FetchInterval int
	// Resolve station names via the detail endpoint
	ResolveNames bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		APIKey:        "",
		BaseURL:       "",
		PostgresDSN:   "",
		LogLevel:      "info",
		LogFormat:     "json",
		HTTPAddr:      ":8080",
		StationIDs:    nil,
		FuelTypes:     []string{"diesel"},
		FetchInterval: 15,
		ResolveNames:  true,
	}
}

// LoadFromEnv loads configuration from environment variables.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("TANKERKOENIG_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("TANKERKOENIG_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		c.PostgresDSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv("STATION_IDS"); v != "" {
		c.StationIDs = splitList(v)
	}
	if v := os.Getenv("FUEL_TYPES"); v != "" {
		c.FuelTypes = splitList(v)
	}
	if v := os.Getenv("FETCH_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			c.FetchInterval = i
		}
	}
	if v := os.Getenv("RESOLVE_NAMES"); v != "" {
		c.ResolveNames = strings.ToLower(v) == "true"
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
