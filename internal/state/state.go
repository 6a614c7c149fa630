// Package state persists the set of previously seen postings between runs.
package state

import (
	"time"

	"github.com/Jesterkori/Internship-scraper/internal/model"
)

// SchemaVersion tags the persisted document so a future shape change can be
// detected on load instead of coerced at runtime.
const SchemaVersion = 1

// TrackerState is the durable snapshot: every posting seen so far keyed by
// ID, when we last checked, and any user-registered extra source URLs
// (reserved, currently only round-tripped).
type TrackerState struct {
	SchemaVersion int                      `json:"schema_version"`
	Postings      map[string]model.Posting `json:"postings"`
	LastChecked   time.Time                `json:"last_checked"`
	CustomSources map[string]string        `json:"custom_sources"`
}

// NewTrackerState returns an empty state stamped with the current time.
func NewTrackerState() *TrackerState {
	return &TrackerState{
		SchemaVersion: SchemaVersion,
		Postings:      make(map[string]model.Posting),
		LastChecked:   time.Now(),
		CustomSources: make(map[string]string),
	}
}

// Merge overwrites entries by ID. Existing postings are refreshed in place,
// never deleted.
func (s *TrackerState) Merge(postings []model.Posting) {
	for _, p := range postings {
		s.Postings[p.ID] = p
	}
}

// Store loads and persists tracker state. Load never fails on corrupt or
// missing content; it resets to an empty state instead.
type Store interface {
	Load() (*TrackerState, error)
	Save(state *TrackerState) error
}
