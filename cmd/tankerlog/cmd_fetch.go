package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tankerlog/tankerlog/internal/pipeline"
	"github.com/tankerlog/tankerlog/internal/store"
)

func fetchCmd() *cobra.Command {
	var stationIDs []string
	var fuelTypes []string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run a one-time fetch",
		Long:  "Fetches current prices for the configured stations once and stores them. Useful for cron jobs and testing.",
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
			if len(cfg.StationIDs) == 0 {
				return fmt.Errorf("--station-ids or STATION_IDS is required")
			}

			api, err := newAPI(logger)
			if err != nil {
				return err
			}

			logger.Info().
				Strs("stationIDs", cfg.StationIDs).
				Strs("fuelTypes", cfg.FuelTypes).
				Msg("running one-time fetch")

			// Connect to database
			db, err := store.New(cfg.PostgresDSN, logger)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer db.Close()

			// Run pipeline once
			p := pipeline.New(api, db, cfg.StationIDs, cfg.FuelTypes, cfg.ResolveNames, logger)
			if err := p.Run(context.Background()); err != nil {
				return fmt.Errorf("fetching: %w", err)
			}

			logger.Info().Msg("fetch completed")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&stationIDs, "station-ids", nil, "Station IDs to log prices for")
	cmd.Flags().StringSliceVar(&fuelTypes, "fuel-types", nil, "Fuel types to log (diesel, e5, e10)")

	return cmd
}
