// Package store provides the PostgreSQL time-series sink for fuel price samples.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"github.com/tankerlog/tankerlog/internal/models"
)

// DB wraps the PostgreSQL connection and provides operations for fuel
// price samples.
type DB struct {
	db     *sql.DB
	logger zerolog.Logger
}

// New creates a new database connection.
func New(dsn string, logger zerolog.Logger) (*DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database connection: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{
		db:     db,
		logger: logger.With().Str("component", "store").Logger(),
	}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks if the database connection is alive.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// InsertSample inserts a fuel price sample. A sample is keyed by station,
// fuel type and fetch time; re-inserting the same key updates price and
// status.
func (d *DB) InsertSample(ctx context.Context, sample models.PriceSample) error {
	query := `
		INSERT INTO fuel_prices (station_id, station_name, fuel_type, price, status, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (station_id, fuel_type, fetched_at)
		DO UPDATE SET
			price = EXCLUDED.price,
			status = EXCLUDED.status,
			station_name = EXCLUDED.station_name
	`

	_, err := d.db.ExecContext(ctx, query,
		sample.StationID,
		sample.StationName,
		sample.FuelType,
		sample.Price,
		sample.Status,
		sample.FetchedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting sample: %w", err)
	}

	d.logger.Debug().
		Str("stationID", sample.StationID).
		Str("fuelType", sample.FuelType).
		Float64("price", sample.Price).
		Str("status", sample.Status).
		Msg("inserted price sample")

	return nil
}

// LatestSample returns the most recent sample for a station and fuel
// type, or sql.ErrNoRows if none exists.
func (d *DB) LatestSample(ctx context.Context, stationID, fuelType string) (models.PriceSample, error) {
	query := `
		SELECT station_id, station_name, fuel_type, price, status, fetched_at
		FROM fuel_prices
		WHERE station_id = $1 AND fuel_type = $2
		ORDER BY fetched_at DESC
		LIMIT 1
	`

	var sample models.PriceSample
	err := d.db.QueryRowContext(ctx, query, stationID, fuelType).Scan(
		&sample.StationID,
		&sample.StationName,
		&sample.FuelType,
		&sample.Price,
		&sample.Status,
		&sample.FetchedAt,
	)
	if err != nil {
		return models.PriceSample{}, fmt.Errorf("querying latest sample: %w", err)
	}

	return sample, nil
}

// GetTotalSamplesCount returns the total number of price samples stored.
func (d *DB) GetTotalSamplesCount(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM fuel_prices").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting samples: %w", err)
	}
	return count, nil
}
