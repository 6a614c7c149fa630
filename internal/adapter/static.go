package adapter

import (
	"context"
	"time"

	"github.com/Jesterkori/Internship-scraper/internal/model"
)

// DefaultStaticCompanies are the well-known organizations the static source
// stands in for: places whose career sites need heavier scraping than this
// tool does.
var DefaultStaticCompanies = []string{
	"Google", "Microsoft", "Amazon", "Meta", "Apple", "Netflix",
}

// StaticAdapter returns a fixed candidate set on every call with no external
// I/O. It exists so the pipeline always has material to dedup against even
// when the listing page is down or its markup changed.
type StaticAdapter struct {
	name      string
	companies []string
	title     string
	location  string
	url       string
	now       func() time.Time
}

// NewStaticAdapter creates the static source. Empty companies means
// DefaultStaticCompanies; now may be nil (time.Now).
func NewStaticAdapter(name string, companies []string, title, location, url string, now func() time.Time) *StaticAdapter {
	if len(companies) == 0 {
		companies = DefaultStaticCompanies
	}
	if now == nil {
		now = time.Now
	}
	return &StaticAdapter{
		name:      name,
		companies: companies,
		title:     title,
		location:  location,
		url:       url,
		now:       now,
	}
}

func (a *StaticAdapter) Name() string { return a.name }

// Fetch returns one candidate per configured company, each stamped with the
// current time as both discovery and posted date.
func (a *StaticAdapter) Fetch(_ context.Context) ([]model.Posting, error) {
	now := a.now()
	postings := make([]model.Posting, 0, len(a.companies))
	for _, company := range a.companies {
		posted := now
		postings = append(postings, model.Posting{
			Company:   company,
			Title:     a.title,
			Location:  a.location,
			URL:       a.url,
			Source:    a.name,
			FirstSeen: now,
			PostedAt:  &posted,
		})
	}
	return postings, nil
}
