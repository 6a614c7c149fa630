package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func serveHTML(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func table(rows ...string) string {
	return "<html><body><table><tr><th>Company</th><th>Role</th><th>Location</th></tr>" +
		strings.Join(rows, "") + "</table></body></html>"
}

func row(company, title, location string) string {
	return fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td></tr>", company, title, location)
}

func TestListingFetch_ExtractsRows(t *testing.T) {
	srv := serveHTML(t, table(
		row(`<a href="https://careers.google.com/x">Google</a>`, "SWE Intern", "Mountain View"),
		row("Stripe", "Backend Intern", "Remote"),
	))

	a := NewListingAdapter("listing", srv.URL, "internwatch/1.0", nil, 0, srv.Client())
	postings, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(postings) != 2 {
		t.Fatalf("got %d postings, want 2", len(postings))
	}

	p := postings[0]
	if p.Company != "Google" || p.Title != "SWE Intern" || p.Location != "Mountain View" {
		t.Errorf("unexpected first posting: %+v", p)
	}
	if p.URL != "https://careers.google.com/x" {
		t.Errorf("row link not picked up, got %q", p.URL)
	}
	if p.Source != "listing" {
		t.Errorf("source = %q, want listing", p.Source)
	}
	// Row without a link falls back to the page URL.
	if postings[1].URL != srv.URL {
		t.Errorf("fallback URL = %q, want %q", postings[1].URL, srv.URL)
	}
}

func TestListingFetch_SkipsClosedAndEmptyRows(t *testing.T) {
	srv := serveHTML(t, table(
		row("Google", "SWE Intern 🔒", "Mountain View"),
		row("Netflix", "Data Intern (Closed)", "Los Gatos"),
		row("", "PM Intern", "NYC"),
		row("Stripe", "", "Remote"),
		row("Datadog", "SRE Intern", "Boston"),
	))

	a := NewListingAdapter("listing", srv.URL, "internwatch/1.0", nil, 0, srv.Client())
	postings, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(postings) != 1 {
		t.Fatalf("got %d postings, want 1", len(postings))
	}
	if postings[0].Company != "Datadog" {
		t.Errorf("kept %q, want Datadog", postings[0].Company)
	}
}

func TestListingFetch_CapsResults(t *testing.T) {
	var rows []string
	for i := 0; i < 40; i++ {
		rows = append(rows, row(fmt.Sprintf("Company%d", i), "Intern", "US"))
	}
	srv := serveHTML(t, table(rows...))

	a := NewListingAdapter("listing", srv.URL, "internwatch/1.0", nil, 0, srv.Client())
	postings, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(postings) != DefaultMaxResults {
		t.Errorf("got %d postings, want cap of %d", len(postings), DefaultMaxResults)
	}
}

func TestListingFetch_SendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, table())
	}))
	defer srv.Close()

	a := NewListingAdapter("listing", srv.URL, "internwatch/1.0", nil, 0, srv.Client())
	if _, err := a.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUA != "internwatch/1.0" {
		t.Errorf("user agent = %q, want internwatch/1.0", gotUA)
	}
}

func TestListingFetch_ErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	a := NewListingAdapter("listing", srv.URL, "internwatch/1.0", nil, 0, srv.Client())
	if _, err := a.Fetch(context.Background()); err == nil {
		t.Fatal("expected error on 404, got nil")
	}
}
