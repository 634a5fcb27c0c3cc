// Package http provides HTTP server functionality for the fuel price logger.
package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the logger. It implements the
// pipeline.Recorder interface.
type Metrics struct {
	// API request metrics
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec

	// Fetch metrics
	LastFetchTimestamp prometheus.Gauge
	CurrentPriceEUR    *prometheus.GaugeVec

	// Database metrics
	DBOperationsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		APIRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tankerlog_api_requests_total",
				Help: "Total number of API requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
		APIRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tankerlog_api_request_duration_seconds",
				Help:    "API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		LastFetchTimestamp: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tankerlog_last_fetch_timestamp",
				Help: "Timestamp of the last fetch run",
			},
		),
		CurrentPriceEUR: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tankerlog_current_price_eur",
				Help: "Current fuel price in EUR per liter",
			},
			[]string{"station_id", "station_name", "fuel_type"},
		),
		DBOperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tankerlog_db_operations_total",
				Help: "Total number of database operations by type and status",
			},
			[]string{"operation", "status"},
		),
	}
}

// RecordAPIRequest records an API request metric.
func (m *Metrics) RecordAPIRequest(endpoint, status string, duration float64) {
	m.APIRequestsTotal.WithLabelValues(endpoint, status).Inc()
	m.APIRequestDuration.WithLabelValues(endpoint).Observe(duration)
}

// RecordPrice records the current fuel price for a station.
func (m *Metrics) RecordPrice(stationID, stationName, fuelType string, price float64) {
	m.CurrentPriceEUR.WithLabelValues(stationID, stationName, fuelType).Set(price)
}

// RecordStoreOperation records a database operation metric.
func (m *Metrics) RecordStoreOperation(operation, status string) {
	m.DBOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordLastFetch records the timestamp of the last fetch run.
func (m *Metrics) RecordLastFetch(timestamp float64) {
	m.LastFetchTimestamp.Set(timestamp)
}
