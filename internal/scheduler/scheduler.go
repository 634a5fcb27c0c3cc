// Package scheduler provides an interval scheduler for fuel price fetching.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tankerlog/tankerlog/internal/pipeline"
)

// Scheduler runs the pipeline on a fixed interval.
type Scheduler struct {
	pipeline *pipeline.Pipeline
	interval time.Duration
	logger   zerolog.Logger

	mu          sync.RWMutex
	nextFetchAt time.Time
	lastFetchAt *time.Time
	running     bool
}

// New creates a new Scheduler.
func New(p *pipeline.Pipeline, interval time.Duration, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		pipeline: p,
		interval: interval,
		logger:   logger.With().Str("component", "scheduler").Logger(),
	}
}

// Start starts the scheduler and blocks until the context is cancelled.
// A fetch runs immediately, then every interval.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	s.logger.Info().Dur("interval", s.interval).Msg("starting scheduler")

	s.runFetch(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.setNextFetch(time.Now().Add(s.interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runFetch(ctx)
			s.setNextFetch(time.Now().Add(s.interval))
		}
	}
}

// IsRunning reports whether the scheduler loop is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// NextFetchAt returns the time of the next scheduled fetch.
func (s *Scheduler) NextFetchAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextFetchAt
}

// LastFetchAt returns the time of the last scheduled fetch, if any.
func (s *Scheduler) LastFetchAt() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastFetchAt
}

func (s *Scheduler) setNextFetch(next time.Time) {
	s.mu.Lock()
	s.nextFetchAt = next
	s.mu.Unlock()

	s.logger.Info().
		Time("nextFetch", next).
		Msg("next fetch scheduled")
}

func (s *Scheduler) runFetch(ctx context.Context) {
	now := time.Now()
	s.mu.Lock()
	s.lastFetchAt = &now
	s.mu.Unlock()

	if err := s.pipeline.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("scheduled fetch failed")
	}
}
