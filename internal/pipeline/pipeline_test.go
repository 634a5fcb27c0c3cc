package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tankerlog/tankerlog/internal/models"
	"github.com/tankerlog/tankerlog/pkg/tankerkoenig"
)

// stubExecutor serves canned JSON bodies per endpoint.
type stubExecutor struct {
	mu        sync.Mutex
	responses map[string][]byte
	err       error
	requests  []string
}

func (s *stubExecutor) Get(ctx context.Context, requestURL string, query url.Values) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for endpoint, body := range s.responses {
		if strings.HasSuffix(requestURL, endpoint) {
			s.requests = append(s.requests, endpoint)
			return body, nil
		}
	}
	return nil, fmt.Errorf("no stub for %s", requestURL)
}

func (s *stubExecutor) Post(ctx context.Context, requestURL string, form url.Values) ([]byte, error) {
	return s.Get(ctx, requestURL, nil)
}

func (s *stubExecutor) countRequests(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, requested := range s.requests {
		if requested == endpoint {
			count++
		}
	}
	return count
}

// fakeStore collects inserted samples in memory.
type fakeStore struct {
	mu      sync.Mutex
	samples []models.PriceSample
	err     error
}

func (f *fakeStore) InsertSample(ctx context.Context, sample models.PriceSample) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.samples = append(f.samples, sample)
	return nil
}

func newStubAPI(t *testing.T, executor *stubExecutor) *tankerkoenig.API {
	t.Helper()
	api, err := tankerkoenig.New("test-key", tankerkoenig.WithExecutor(executor))
	require.NoError(t, err)
	return api
}

func TestPipelineRunStoresSamples(t *testing.T) {
	executor := &stubExecutor{
		responses: map[string][]byte{
			"prices.php": []byte(`{
				"ok": true,
				"prices": {
					"station-1": {"status": "open", "diesel": 1.469, "e5": 1.599}
				}
			}`),
			"detail.php": []byte(`{
				"ok": true,
				"station": {"id": "station-1", "name": "ARAL Berlin"}
			}`),
		},
	}

	store := &fakeStore{}
	p := New(newStubAPI(t, executor), store, []string{"station-1"}, []string{"diesel", "e5"}, true, zerolog.Nop())

	err := p.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, store.samples, 2)
	byFuel := make(map[string]models.PriceSample)
	for _, sample := range store.samples {
		byFuel[sample.FuelType] = sample
	}

	diesel := byFuel["diesel"]
	assert.Equal(t, "station-1", diesel.StationID)
	assert.Equal(t, "ARAL Berlin", diesel.StationName)
	assert.Equal(t, 1.469, diesel.Price)
	assert.Equal(t, "open", diesel.Status)
	assert.False(t, diesel.FetchedAt.IsZero())

	assert.Equal(t, 1.599, byFuel["e5"].Price)

	snapshot := p.GetMetrics().GetSnapshot()
	assert.True(t, snapshot.LastFetchSuccess)
	assert.Equal(t, int64(1), snapshot.TotalRequests)
	assert.Equal(t, 2, snapshot.SamplesLastRun)
}

func TestPipelineSkipsUnavailablePrices(t *testing.T) {
	executor := &stubExecutor{
		responses: map[string][]byte{
			"prices.php": []byte(`{
				"ok": true,
				"prices": {
					"station-1": {"status": "closed", "diesel": null, "e5": null, "e10": null}
				}
			}`),
		},
	}

	store := &fakeStore{}
	p := New(newStubAPI(t, executor), store, []string{"station-1"}, []string{"diesel"}, false, zerolog.Nop())

	err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, store.samples, "no sample is stored when the price is unavailable")
}

func TestPipelineCachesStationNames(t *testing.T) {
	executor := &stubExecutor{
		responses: map[string][]byte{
			"prices.php": []byte(`{
				"ok": true,
				"prices": {"station-1": {"status": "open", "diesel": 1.469}}
			}`),
			"detail.php": []byte(`{
				"ok": true,
				"station": {"id": "station-1", "name": "ARAL Berlin"}
			}`),
		},
	}

	store := &fakeStore{}
	p := New(newStubAPI(t, executor), store, []string{"station-1"}, []string{"diesel"}, true, zerolog.Nop())

	require.NoError(t, p.Run(context.Background()))
	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, 1, executor.countRequests("detail.php"), "name lookups are cached across runs")
	assert.Equal(t, 2, executor.countRequests("prices.php"))
}

func TestPipelineToleratesDetailFailure(t *testing.T) {
	executor := &stubExecutor{
		responses: map[string][]byte{
			"prices.php": []byte(`{
				"ok": true,
				"prices": {"station-1": {"status": "open", "diesel": 1.469}}
			}`),
			"detail.php": []byte(`{"ok": false, "message": "station not found"}`),
		},
	}

	store := &fakeStore{}
	p := New(newStubAPI(t, executor), store, []string{"station-1"}, []string{"diesel"}, true, zerolog.Nop())

	require.NoError(t, p.Run(context.Background()))

	require.Len(t, store.samples, 1)
	assert.Equal(t, "Unbekannt", store.samples[0].StationName)
}

func TestPipelineChunksStationIDs(t *testing.T) {
	prices := make([]string, 0, 11)
	ids := make([]string, 0, 11)
	for i := 0; i < 11; i++ {
		id := fmt.Sprintf("station-%d", i)
		ids = append(ids, id)
		prices = append(prices, fmt.Sprintf(`"%s": {"status": "open", "diesel": 1.4}`, id))
	}
	body := fmt.Sprintf(`{"ok": true, "prices": {%s}}`, strings.Join(prices, ","))

	executor := &stubExecutor{responses: map[string][]byte{"prices.php": []byte(body)}}
	store := &fakeStore{}
	p := New(newStubAPI(t, executor), store, ids, []string{"diesel"}, false, zerolog.Nop())

	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, 2, executor.countRequests("prices.php"), "11 stations need two prices requests")
	assert.Len(t, store.samples, 11)
}

func TestPipelineReportsFetchFailure(t *testing.T) {
	executor := &stubExecutor{err: errors.New("connection refused")}
	store := &fakeStore{}
	p := New(newStubAPI(t, executor), store, []string{"station-1"}, []string{"diesel"}, false, zerolog.Nop())

	err := p.Run(context.Background())
	assert.Error(t, err)

	snapshot := p.GetMetrics().GetSnapshot()
	assert.False(t, snapshot.LastFetchSuccess)
	assert.Equal(t, int64(1), snapshot.TotalErrors)
	require.NotNil(t, snapshot.LastError)
}

func TestPipelineReportsRejectedRequest(t *testing.T) {
	executor := &stubExecutor{
		responses: map[string][]byte{
			"prices.php": []byte(`{"ok": false, "status": "error", "message": "apikey nicht angegeben"}`),
		},
	}

	store := &fakeStore{}
	p := New(newStubAPI(t, executor), store, []string{"station-1"}, []string{"diesel"}, false, zerolog.Nop())

	err := p.Run(context.Background())
	require.Error(t, err, "a rejected request is a failed fetch")
	assert.Contains(t, err.Error(), "apikey nicht angegeben")
	assert.Empty(t, store.samples)

	snapshot := p.GetMetrics().GetSnapshot()
	assert.False(t, snapshot.LastFetchSuccess)
	assert.Equal(t, int64(1), snapshot.TotalErrors)
	require.NotNil(t, snapshot.LastError)
	assert.Contains(t, *snapshot.LastError, "apikey nicht angegeben")
}

func TestPipelineToleratesStoreFailure(t *testing.T) {
	executor := &stubExecutor{
		responses: map[string][]byte{
			"prices.php": []byte(`{
				"ok": true,
				"prices": {"station-1": {"status": "open", "diesel": 1.469}}
			}`),
		},
	}

	store := &fakeStore{err: errors.New("db down")}
	p := New(newStubAPI(t, executor), store, []string{"station-1"}, []string{"diesel"}, false, zerolog.Nop())

	err := p.Run(context.Background())
	assert.NoError(t, err, "store failures are logged, not fatal")

	snapshot := p.GetMetrics().GetSnapshot()
	assert.Equal(t, 0, snapshot.SamplesLastRun)
}
