// Package main provides the entry point for the fuel price logger CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tankerlog/tankerlog/internal/config"
	"github.com/tankerlog/tankerlog/pkg/tankerkoenig"
)

var (
	// Version is set at build time.
	Version = "dev"
	// Commit is set at build time.
	Commit = "none"
	// BuildDate is set at build time.
	BuildDate = "unknown"
)

var cfg *config.Config

func main() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	rootCmd := &cobra.Command{
		Use:   "tankerlog",
		Short: "Fuel Price Logger - Track German gas station prices over time",
		Long: `Fuel Price Logger is a service that fetches fuel prices from the
Tankerkoenig API and stores them in a PostgreSQL database for analysis
and monitoring.

Features:
  - Typed Tankerkoenig API client (list, detail, prices, corrections)
  - Continuous price logging with a configurable interval
  - Prometheus metrics endpoint
  - Status endpoint for operational visibility`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "Tankerkoenig API key")
	rootCmd.PersistentFlags().StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Tankerkoenig API base URL (defaults to production)")
	rootCmd.PersistentFlags().StringVar(&cfg.PostgresDSN, "postgres-dsn", cfg.PostgresDSN, "PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (json, console)")
	rootCmd.PersistentFlags().StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address for /metrics, /status")

	// Add subcommands
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(pricesCmd())
	rootCmd.AddCommand(detailCmd())
	rootCmd.AddCommand(nearbyCmd())
	rootCmd.AddCommand(complainCmd())
	rootCmd.AddCommand(latestCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger() zerolog.Logger {
	var logger zerolog.Logger

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set log format
	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	return logger
}

// newAPI builds the Tankerkoenig client from the global configuration.
func newAPI(logger zerolog.Logger) (*tankerkoenig.API, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("--api-key or TANKERKOENIG_API_KEY is required")
	}

	opts := []tankerkoenig.Option{tankerkoenig.WithLogger(logger)}
	if cfg.BaseURL != "" {
		opts = append(opts, tankerkoenig.WithBaseURL(cfg.BaseURL))
	}

	return tankerkoenig.New(cfg.APIKey, opts...)
}
