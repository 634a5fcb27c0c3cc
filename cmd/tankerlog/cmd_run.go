package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tankerlog/tankerlog/internal/http"
	"github.com/tankerlog/tankerlog/internal/pipeline"
	"github.com/tankerlog/tankerlog/internal/scheduler"
	"github.com/tankerlog/tankerlog/internal/store"
)

func runCmd() *cobra.Command {
	var interval int
	var stationIDs []string
	var fuelTypes []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the continuous price logger service",
		Long:  "Starts the fuel price logger with an internal scheduler that fetches prices at the configured interval.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger()

			if cfg.PostgresDSN == "" {
				return fmt.Errorf("--postgres-dsn is required")
			}
			if len(stationIDs) > 0 {
				cfg.StationIDs = stationIDs
			}
			if len(fuelTypes) > 0 {
				cfg.FuelTypes = fuelTypes
			}
			if interval > 0 {
				cfg.FetchInterval = interval
			}
			if len(cfg.StationIDs) == 0 {
				return fmt.Errorf("--station-ids or STATION_IDS is required")
			}

			api, err := newAPI(logger)
			if err != nil {
				return err
			}

			logger.Info().
				Str("version", Version).
				Str("commit", Commit).
				Str("buildDate", BuildDate).
				Str("httpAddr", cfg.HTTPAddr).
				Int("fetchInterval", cfg.FetchInterval).
				Strs("stationIDs", cfg.StationIDs).
				Strs("fuelTypes", cfg.FuelTypes).
				Msg("starting fuel price logger")

			// Connect to database
			db, err := store.New(cfg.PostgresDSN, logger)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer db.Close()

			// Create pipeline
			p := pipeline.New(api, db, cfg.StationIDs, cfg.FuelTypes, cfg.ResolveNames, logger)

			// Create scheduler
			sched := scheduler.New(p, time.Duration(cfg.FetchInterval)*time.Minute, logger)

			// Create HTTP server and wire its metrics into the pipeline
			httpServer := http.NewServer(cfg.HTTPAddr, p, sched, db, logger)
			p.SetRecorder(httpServer.Metrics())

			// Setup signal handling
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			// Start HTTP server in goroutine
			go func() {
				if err := httpServer.Start(); err != nil {
					logger.Error().Err(err).Msg("HTTP server error")
					cancel()
				}
			}()

			// Start scheduler in goroutine
			go func() {
				if err := sched.Start(ctx); err != nil && err != context.Canceled {
					logger.Error().Err(err).Msg("scheduler error")
					cancel()
				}
			}()

			// Wait for signal
			select {
			case sig := <-sigCh:
				logger.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
			case <-ctx.Done():
			}

			// Graceful shutdown
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer shutdownCancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("HTTP server shutdown error")
			}

			logger.Info().Msg("shutdown complete")
			return nil
		},
	}

	cmd.Flags().IntVar(&interval, "interval", 0, "Fetch interval in minutes (default 15)")
	cmd.Flags().StringSliceVar(&stationIDs, "station-ids", nil, "Station IDs to log prices for")
	cmd.Flags().StringSliceVar(&fuelTypes, "fuel-types", nil, "Fuel types to log (diesel, e5, e10)")

	return cmd
}
