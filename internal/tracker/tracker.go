// Package tracker runs one fetch → diff → notify → persist cycle.
package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/Jesterkori/Internship-scraper/internal/adapter"
	"github.com/Jesterkori/Internship-scraper/internal/diff"
	"github.com/Jesterkori/Internship-scraper/internal/model"
	"github.com/Jesterkori/Internship-scraper/internal/state"
)

// Tracker owns the full cycle pipeline with all its dependencies injected.
type Tracker struct {
	registry *adapter.Registry
	store    state.Store
	notifier model.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// CycleResult summarizes one completed cycle for display.
type CycleResult struct {
	Fetched     int
	New         []model.Posting
	TotalStored int
	State       *state.TrackerState
}

// New creates a tracker wired with its dependencies. now may be nil (time.Now).
func New(registry *adapter.Registry, store state.Store, notifier model.Notifier, logger *slog.Logger, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		registry: registry,
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      now,
	}
}

// RunCycle executes one cycle: load state, fetch all sources, diff against
// the stored set, notify for each new posting, merge, and persist. Notify
// and save failures are logged and do not fail the cycle; the returned
// result always reflects the in-memory merge.
func (t *Tracker) RunCycle(ctx context.Context) (*CycleResult, error) {
	st, err := t.store.Load()
	if err != nil {
		return nil, err
	}

	current := t.registry.FetchAll(ctx)
	fresh := diff.New(current, st.Postings)

	if len(fresh) > 0 {
		if err := t.notifier.Notify(fresh); err != nil {
			t.logger.Error("notification failed", "error", err)
		}
	}

	st.Merge(current)
	st.LastChecked = t.now()

	if err := t.store.Save(st); err != nil {
		// Non-fatal: this cycle's in-memory result still stands; the next
		// cycle may just re-load the older snapshot.
		t.logger.Error("saving state failed", "error", err)
	}

	t.logger.Info("cycle complete",
		"fetched", len(current),
		"new", len(fresh),
		"stored", len(st.Postings),
	)

	return &CycleResult{
		Fetched:     len(current),
		New:         fresh,
		TotalStored: len(st.Postings),
		State:       st,
	}, nil
}
