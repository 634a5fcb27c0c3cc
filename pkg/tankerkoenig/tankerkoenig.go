// Package tankerkoenig provides a typed client for the Tankerkoenig fuel
// price API.
//
// Callers build a request through the API entry point, set its parameters
// with fluent setters and call Execute. The client validates the request,
// attaches the API key and a Unix timestamp, dispatches it over the
// transport capability and maps the JSON response into a typed result.
//
// Technical information: https://creativecommons.tankerkoenig.de/#techInfo
package tankerkoenig

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	// BaseURL is the production API endpoint.
	BaseURL = "https://creativecommons.tankerkoenig.de/json/"

	// DemoAPIKey is the public demo key as defined on the official
	// website. Only usable for testing.
	DemoAPIKey = "00000000-0000-0000-0000-000000000002"
)

// API builds the endpoint-specific requests. It holds no mutable state
// and is safe for concurrent use as long as its Executor is.
type API struct {
	requester *requester
}

// Option configures an API instance.
type Option func(*API)

// WithBaseURL overrides the production API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(a *API) {
		a.requester.baseURL = baseURL
	}
}

// WithExecutor replaces the default HTTP transport.
func WithExecutor(executor Executor) Option {
	return func(a *API) {
		a.requester.executor = executor
	}
}

// WithHTTPClient keeps the default transport but swaps the underlying
// http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(a *API) {
		a.requester.executor = NewHTTPExecutorWithClient(client)
	}
}

// WithLogger attaches a zerolog logger for request-level debug logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *API) {
		a.requester.logger = logger.With().Str("component", "tankerkoenig").Logger()
	}
}

// New creates a new API instance. The key has to be neither empty nor
// missing; use DemoAPIKey for testing.
func New(apiKey string, opts ...Option) (*API, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("the API key has to be neither empty nor null")
	}

	api := &API{
		requester: &requester{
			executor: NewHTTPExecutor(),
			baseURL:  BaseURL,
			apiKey:   apiKey,
			logger:   zerolog.Nop(),
			now:      time.Now,
		},
	}
	for _, opt := range opts {
		opt(api)
	}
	return api, nil
}

// List builds a station list request. The supplied coordinates define the
// search center; lat must be between -90 and 90, lng between -180 and 180.
func (a *API) List(lat, lng float64) *StationListRequest {
	req := &StationListRequest{
		requester:    a.requester,
		searchRadius: 5.0,
		gasType:      GasRequestALL,
		sorting:      SortingDistance,
	}
	return req.SetCoordinates(lat, lng)
}

// Detail builds a station detail request for the given station ID, which
// is obtainable with List.
func (a *API) Detail(stationID string) *StationDetailRequest {
	return &StationDetailRequest{requester: a.requester, stationID: stationID}
}

// Prices builds a prices request. Between 1 and 10 station IDs must be
// added before execution.
func (a *API) Prices() *PricesRequest {
	return &PricesRequest{requester: a.requester, stationIDs: make(map[string]struct{})}
}

// Correction builds a station correction request of the given type.
func (a *API) Correction(stationID string, correctionType CorrectionType) *CorrectionRequest {
	return &CorrectionRequest{requester: a.requester, correctionType: correctionType, stationID: stationID}
}
