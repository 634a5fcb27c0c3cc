// Package pipeline provides orchestration for fetching fuel prices and
// persisting them to the time-series store.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tankerlog/tankerlog/internal/models"
	"github.com/tankerlog/tankerlog/pkg/tankerkoenig"
)

// maxIDsPerRequest is the API limit of station IDs per prices request.
const maxIDsPerRequest = 10

// unknownStationName is used when the detail lookup fails or the station
// has no name.
const unknownStationName = "Unbekannt"

// Store persists price samples. Implemented by the PostgreSQL store.
type Store interface {
	InsertSample(ctx context.Context, sample models.PriceSample) error
}

// Recorder receives pipeline events for external metrics. All methods
// must be safe for concurrent use.
type Recorder interface {
	RecordAPIRequest(endpoint, status string, duration float64)
	RecordPrice(stationID, stationName, fuelType string, price float64)
	RecordStoreOperation(operation, status string)
	RecordLastFetch(timestamp float64)
}

// Metrics holds fetch metrics for the pipeline.
type Metrics struct {
	mu               sync.RWMutex
	TotalRequests    int64
	TotalErrors      int64
	LastFetchAt      *time.Time
	LastFetchSuccess bool
	LastResponseTime time.Duration
	LastError        *string
	SamplesLastRun   int
}

// GetSnapshot returns a thread-safe snapshot of the metrics.
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return MetricsSnapshot{
		TotalRequests:    m.TotalRequests,
		TotalErrors:      m.TotalErrors,
		LastFetchAt:      m.LastFetchAt,
		LastFetchSuccess: m.LastFetchSuccess,
		LastResponseTime: m.LastResponseTime,
		LastError:        m.LastError,
		SamplesLastRun:   m.SamplesLastRun,
	}
}

// MetricsSnapshot is a thread-safe copy of Metrics data.
type MetricsSnapshot struct {
	TotalRequests    int64
	TotalErrors      int64
	LastFetchAt      *time.Time
	LastFetchSuccess bool
	LastResponseTime time.Duration
	LastError        *string
	SamplesLastRun   int
}

// Pipeline fetches prices for the configured stations and persists them.
type Pipeline struct {
	api          *tankerkoenig.API
	store        Store
	stationIDs   []string
	fuelTypes    []tankerkoenig.GasType
	resolveNames bool
	logger       zerolog.Logger

	metrics  *Metrics
	recorder Recorder

	mu    sync.Mutex
	names map[string]string
}

// New creates a new Pipeline.
func New(api *tankerkoenig.API, store Store, stationIDs, fuelTypes []string, resolveNames bool, logger zerolog.Logger) *Pipeline {
	types := make([]tankerkoenig.GasType, 0, len(fuelTypes))
	for _, fuelType := range fuelTypes {
		types = append(types, tankerkoenig.GasType(fuelType))
	}

	return &Pipeline{
		api:          api,
		store:        store,
		stationIDs:   stationIDs,
		fuelTypes:    types,
		resolveNames: resolveNames,
		logger:       logger.With().Str("component", "pipeline").Logger(),
		metrics:      &Metrics{},
		names:        make(map[string]string),
	}
}

// SetRecorder attaches an external metrics recorder.
func (p *Pipeline) SetRecorder(recorder Recorder) {
	p.recorder = recorder
}

// GetMetrics returns the pipeline metrics.
func (p *Pipeline) GetMetrics() *Metrics {
	return p.metrics
}

// Run fetches current prices for all configured stations and stores one
// sample per station and fuel type. A failure for one chunk of stations
// is logged and does not abort the remaining chunks.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info().
		Int("stations", len(p.stationIDs)).
		Msg("fetching fuel prices")

	start := time.Now()
	samples := 0
	var firstErr error

	for _, chunk := range p.chunks() {
		stored, err := p.runChunk(ctx, chunk)
		if err != nil {
			p.logger.Error().
				Err(err).
				Strs("stationIDs", chunk).
				Msg("failed to fetch prices for stations")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		samples += stored
	}

	duration := time.Since(start)
	now := time.Now()

	p.metrics.mu.Lock()
	p.metrics.LastFetchAt = &now
	p.metrics.LastResponseTime = duration
	p.metrics.SamplesLastRun = samples
	if firstErr != nil {
		p.metrics.LastFetchSuccess = false
		errStr := firstErr.Error()
		p.metrics.LastError = &errStr
	} else {
		p.metrics.LastFetchSuccess = true
		p.metrics.LastError = nil
	}
	p.metrics.mu.Unlock()

	if p.recorder != nil {
		p.recorder.RecordLastFetch(float64(now.Unix()))
	}

	if firstErr != nil {
		return firstErr
	}

	p.logger.Info().
		Int("samples", samples).
		Dur("duration", duration).
		Msg("fetch completed")

	return nil
}

// runChunk fetches prices for up to 10 stations and stores the samples.
func (p *Pipeline) runChunk(ctx context.Context, stationIDs []string) (int, error) {
	p.metrics.mu.Lock()
	p.metrics.TotalRequests++
	p.metrics.mu.Unlock()

	start := time.Now()
	result, err := p.api.Prices().AddIDs(stationIDs...).Execute(ctx)
	duration := time.Since(start).Seconds()

	if err != nil {
		p.countError()
		if p.recorder != nil {
			p.recorder.RecordAPIRequest("prices.php", "error", duration)
		}
		return 0, err
	}
	if p.recorder != nil {
		p.recorder.RecordAPIRequest("prices.php", "ok", duration)
	}

	if !result.OK {
		p.countError()
		return 0, fmt.Errorf("prices request was not successful: %s", result.Message)
	}

	fetchedAt := time.Now()
	stored := 0

	for _, stationID := range stationIDs {
		prices, ok := result.GasPrices(stationID)
		if !ok {
			p.logger.Warn().
				Str("stationID", stationID).
				Msg("no price information for station")
			continue
		}

		name := p.stationName(ctx, stationID)

		for _, fuelType := range p.fuelTypes {
			price, ok := prices.Price(fuelType)
			if !ok {
				p.logger.Debug().
					Str("stationID", stationID).
					Str("fuelType", string(fuelType)).
					Str("status", string(prices.Status)).
					Msg("price not available")
				continue
			}

			sample := models.PriceSample{
				StationID:   stationID,
				StationName: name,
				FuelType:    string(fuelType),
				Price:       price,
				Status:      string(prices.Status),
				FetchedAt:   fetchedAt,
			}

			if err := p.store.InsertSample(ctx, sample); err != nil {
				p.logger.Error().
					Err(err).
					Str("stationID", stationID).
					Str("fuelType", string(fuelType)).
					Msg("failed to store sample")
				if p.recorder != nil {
					p.recorder.RecordStoreOperation("insert", "error")
				}
				continue
			}

			if p.recorder != nil {
				p.recorder.RecordStoreOperation("insert", "ok")
				p.recorder.RecordPrice(stationID, name, string(fuelType), price)
			}
			stored++
		}
	}

	return stored, nil
}

// stationName resolves a stations name via the detail endpoint. Names are
// cached for the lifetime of the pipeline; lookup failures are tolerated.
func (p *Pipeline) stationName(ctx context.Context, stationID string) string {
	if !p.resolveNames {
		return unknownStationName
	}

	p.mu.Lock()
	name, ok := p.names[stationID]
	p.mu.Unlock()
	if ok {
		return name
	}

	name = unknownStationName
	result, err := p.api.Detail(stationID).Execute(ctx)
	if err != nil {
		p.logger.Warn().
			Err(err).
			Str("stationID", stationID).
			Msg("could not fetch station details")
	} else if result.OK && result.Station != nil && result.Station.Name != "" {
		name = result.Station.Name
	}

	p.mu.Lock()
	p.names[stationID] = name
	p.mu.Unlock()

	return name
}

func (p *Pipeline) countError() {
	p.metrics.mu.Lock()
	p.metrics.TotalErrors++
	p.metrics.mu.Unlock()
}

// chunks splits the configured station IDs into groups of at most 10.
func (p *Pipeline) chunks() [][]string {
	var chunks [][]string
	for start := 0; start < len(p.stationIDs); start += maxIDsPerRequest {
		end := min(start+maxIDsPerRequest, len(p.stationIDs))
		chunks = append(chunks, p.stationIDs[start:end])
	}
	return chunks
}
