package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tankerlog/tankerlog/internal/store"
)

func latestCmd() *cobra.Command {
	var fuelType string

	cmd := &cobra.Command{
		Use:   "latest <station-id>",
		Short: "Print the most recent stored price for a station",
		Long:  "Reads the most recent stored sample for a station and fuel type from the database.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger()

			if cfg.PostgresDSN == "" {
				return fmt.Errorf("--postgres-dsn is required")
			}

			db, err := store.New(cfg.PostgresDSN, logger)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer db.Close()

			sample, err := db.LatestSample(context.Background(), args[0], fuelType)
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("no samples stored for station %s (%s)", args[0], fuelType)
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s (%s)\n", sample.StationName, sample.StationID)
			fmt.Printf("  %-6s %.3f €/L  %s  (%s)\n",
				sample.FuelType,
				sample.Price,
				sample.FetchedAt.Format(time.RFC3339),
				sample.Status,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&fuelType, "fuel-type", "diesel", "Fuel type (diesel, e5, e10)")

	return cmd
}
