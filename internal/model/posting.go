package model

import (
	"context"
	"time"
)

// Posting is the unified representation of one internship opportunity,
// whichever source it came from.
type Posting struct {
	ID        string     `json:"id"`                  // stable key derived from company/title/location
	Company   string     `json:"company"`             // organization name
	Title     string     `json:"title"`               // role title
	Location  string     `json:"location"`            // location string as published
	URL       string     `json:"url"`                 // link to the posting or board
	Source    string     `json:"source"`              // adapter name
	FirstSeen time.Time  `json:"first_seen"`          // our clock, stamped when fetched
	PostedAt  *time.Time `json:"posted_at,omitempty"` // nullable (most sources omit it)
	IsNew     bool       `json:"-"`                   // set for this run only, never persisted
}

// SourceAdapter fetches raw posting candidates from a single origin.
type SourceAdapter interface {
	Name() string
	Fetch(ctx context.Context) ([]Posting, error)
}

// Notifier announces newly discovered postings.
type Notifier interface {
	Notify(postings []Posting) error
}
