package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/tankerlog/tankerlog/internal/models"
	"github.com/tankerlog/tankerlog/internal/pipeline"
	"github.com/tankerlog/tankerlog/internal/scheduler"
	"github.com/tankerlog/tankerlog/internal/store"
)

// StatusHandler handles the /status endpoint.
type StatusHandler struct {
	pipeline  *pipeline.Pipeline
	scheduler *scheduler.Scheduler
	db        *store.DB
	startTime time.Time
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(p *pipeline.Pipeline, sched *scheduler.Scheduler, db *store.DB) *StatusHandler {
	return &StatusHandler{
		pipeline:  p,
		scheduler: sched,
		db:        db,
		startTime: time.Now(),
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := models.StatusResponse{
		Status:        "healthy",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}

	// Get scheduler status
	if h.scheduler != nil {
		response.SchedulerRunning = h.scheduler.IsRunning()
		response.LastFetchAt = h.scheduler.LastFetchAt()
		nextFetch := h.scheduler.NextFetchAt()
		if !nextFetch.IsZero() {
			response.NextFetchAt = &nextFetch
		}
	}

	// Get fetcher status
	if h.pipeline != nil {
		snapshot := h.pipeline.GetMetrics().GetSnapshot()
		response.Fetcher = models.FetcherStatus{
			LastFetchAt:        snapshot.LastFetchAt,
			LastFetchSuccess:   snapshot.LastFetchSuccess,
			LastResponseTimeMs: snapshot.LastResponseTime.Milliseconds(),
			LastError:          snapshot.LastError,
			TotalRequests:      snapshot.TotalRequests,
			TotalErrors:        snapshot.TotalErrors,
			SamplesLastRun:     snapshot.SamplesLastRun,
		}
	}

	// Get database status
	response.Database = h.getDatabaseStatus(ctx)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *StatusHandler) getDatabaseStatus(ctx context.Context) models.DatabaseStatus {
	status := models.DatabaseStatus{
		Connected: false,
	}

	if h.db == nil {
		return status
	}

	// Check database connection
	if err := h.db.Ping(); err != nil {
		return status
	}
	status.Connected = true

	// Get total samples count
	count, err := h.db.GetTotalSamplesCount(ctx)
	if err == nil {
		status.TotalSamplesStored = count
	}

	return status
}
