package adapter

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Jesterkori/Internship-scraper/internal/identity"
	"github.com/Jesterkori/Internship-scraper/internal/model"
)

// Registry holds the registered source adapters and runs them jointly.
type Registry struct {
	adapters []model.SourceAdapter
	logger   *slog.Logger
	now      func() time.Time
}

// NewRegistry creates a registry over the given adapters, in registration
// order. now may be nil (time.Now).
func NewRegistry(adapters []model.SourceAdapter, logger *slog.Logger, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{adapters: adapters, logger: logger, now: now}
}

// FetchAll runs every adapter concurrently and concatenates their results in
// registration order, each adapter's own order preserved. A failing adapter
// is logged and contributes nothing; it never aborts its siblings. Every
// candidate gets its discovery timestamp stamped to now and its stable ID
// assigned here, so adapters stay oblivious to identity.
func (r *Registry) FetchAll(ctx context.Context) []model.Posting {
	results := make([][]model.Posting, len(r.adapters))

	var g errgroup.Group
	for i, a := range r.adapters {
		g.Go(func() error {
			postings, err := a.Fetch(ctx)
			if err != nil {
				// Best effort: don't cancel siblings.
				r.logger.Error("source fetch failed", "source", a.Name(), "error", err)
				return nil
			}
			results[i] = postings
			r.logger.Debug("source fetched", "source", a.Name(), "count", len(postings))
			return nil
		})
	}
	g.Wait()

	now := r.now()
	var merged []model.Posting
	for _, postings := range results {
		for _, p := range postings {
			p.FirstSeen = now
			p.ID = identity.ID(p.Company, p.Title, p.Location)
			merged = append(merged, p)
		}
	}
	return merged
}
