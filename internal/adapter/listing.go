package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Jesterkori/Internship-scraper/internal/model"
)

// DefaultClosedMarkers flag rows whose posting is no longer accepting
// applications. The lock emoji is the convention on community-maintained
// internship boards.
var DefaultClosedMarkers = []string{"🔒", "closed"}

// DefaultMaxResults bounds how many candidates one fetch may emit, so a
// board dump cannot flood the notifier. Spam prevention, not correctness.
const DefaultMaxResults = 15

// ListingAdapter scrapes a listing page whose postings live in table rows of
// at least three cells: company, title, location.
type ListingAdapter struct {
	name          string
	url           string
	userAgent     string
	closedMarkers []string
	maxResults    int
	client        *http.Client
}

// NewListingAdapter creates an adapter for the listing page at url.
// Zero maxResults means DefaultMaxResults; empty closedMarkers means
// DefaultClosedMarkers.
func NewListingAdapter(name, url, userAgent string, closedMarkers []string, maxResults int, client *http.Client) *ListingAdapter {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if len(closedMarkers) == 0 {
		closedMarkers = DefaultClosedMarkers
	}
	return &ListingAdapter{
		name:          name,
		url:           url,
		userAgent:     userAgent,
		closedMarkers: closedMarkers,
		maxResults:    maxResults,
		client:        client,
	}
}

func (a *ListingAdapter) Name() string { return a.name }

// Fetch retrieves the listing page and extracts open postings from its table
// rows. Closed rows and rows with an empty company or title are skipped, and
// output is capped at maxResults.
func (a *ListingAdapter) Fetch(ctx context.Context) ([]model.Posting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s fetch: %w", a.name, err)
	}
	req.Header.Set("User-Agent", a.userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s fetch: %w", a.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s fetch: unexpected status %d", a.name, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s fetch: parsing html: %w", a.name, err)
	}

	var postings []model.Posting
	doc.Find("table tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return true // header or malformed row
		}

		company := cleanText(cells.Eq(0).Text())
		title := cleanText(cells.Eq(1).Text())
		location := cleanText(cells.Eq(2).Text())

		if company == "" || title == "" || a.isClosed(title) {
			return true
		}

		url := a.url
		if href, ok := row.Find("a[href]").First().Attr("href"); ok && strings.TrimSpace(href) != "" {
			url = strings.TrimSpace(href)
		}

		postings = append(postings, model.Posting{
			Company:  company,
			Title:    title,
			Location: location,
			URL:      url,
			Source:   a.name,
		})
		return len(postings) < a.maxResults
	})

	return postings, nil
}

// isClosed reports whether the title cell marks the posting as closed.
func (a *ListingAdapter) isClosed(title string) bool {
	lower := strings.ToLower(title)
	for _, marker := range a.closedMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// cleanText collapses whitespace (including non-breaking spaces) to single
// spaces and trims the result.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
