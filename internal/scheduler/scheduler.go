// Package scheduler drives periodic tracker cycles.
package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// TickFunc is one unit of scheduled work; for the monitor loop it is a
// tracker cycle. Keeping it a plain func lets tests drive ticks directly
// without any timer.
type TickFunc func(ctx context.Context) error

// Scheduler runs a tick immediately and then on a fixed interval. A tick
// still running when the next interval fires causes that firing to be
// skipped, so cycles never overlap.
type Scheduler struct {
	tick     TickFunc
	interval time.Duration
	logger   *slog.Logger
	running  atomic.Bool
}

// New creates a scheduler that invokes tick at the given interval.
func New(tick TickFunc, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{tick: tick, interval: interval, logger: logger}
}

// Run starts the loop. It ticks once immediately, then on every interval,
// and returns nil when ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("starting monitor", "interval", s.interval.String())

	s.Tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("shutting down monitor")
			return nil
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one unit of work unless one is already in flight, in which case
// it logs the skip and returns. Exported so tests and one-shot commands can
// drive the scheduler without the timer.
func (s *Scheduler) Tick(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn("previous cycle still running, skipping this tick")
		return
	}
	defer s.running.Store(false)

	if err := s.tick(ctx); err != nil {
		s.logger.Error("cycle failed", "error", err)
	}
}
