// Package models provides shared data types for the fuel price logger.
package models

import (
	"time"
)

// PriceSample is a single fuel price measurement ready for persistence.
type PriceSample struct {
	// StationID is the Tankerkoenig station identifier.
	StationID string
	// StationName is resolved via the detail endpoint; "Unbekannt" if
	// the lookup failed.
	StationName string
	// FuelType is one of diesel, e5, e10.
	FuelType string
	// Price in EUR per liter.
	Price float64
	// Status is the stations availability at fetch time (open, closed,
	// not found).
	Status string
	// FetchedAt is when the data was fetched.
	FetchedAt time.Time
}

// FetcherStatus holds the operational status of the price fetcher.
type FetcherStatus struct {
	LastFetchAt        *time.Time `json:"last_fetch_at"`
	LastFetchSuccess   bool       `json:"last_fetch_success"`
	LastResponseTimeMs int64      `json:"last_response_time_ms"`
	LastError          *string    `json:"last_error"`
	TotalRequests      int64      `json:"total_requests"`
	TotalErrors        int64      `json:"total_errors"`
	SamplesLastRun     int        `json:"samples_last_run"`
}

// StatusResponse is the response for the /status endpoint.
type StatusResponse struct {
	Status           string         `json:"status"`
	UptimeSeconds    int64          `json:"uptime_seconds"`
	SchedulerRunning bool           `json:"scheduler_running"`
	NextFetchAt      *time.Time     `json:"next_fetch_at,omitempty"`
	LastFetchAt      *time.Time     `json:"last_fetch_at,omitempty"`
	Fetcher          FetcherStatus  `json:"fetcher"`
	Database         DatabaseStatus `json:"database"`
}

// DatabaseStatus holds the database connection status.
type DatabaseStatus struct {
	Connected          bool  `json:"connected"`
	TotalSamplesStored int64 `json:"total_samples_stored"`
}
