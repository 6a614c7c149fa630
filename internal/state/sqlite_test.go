package state

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Jesterkori/Internship-scraper/internal/model"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"), discardLogger())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	want := sampleState()
	if err := store.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	p, ok := got.Postings["google_swe_intern_mountain_view"]
	if !ok {
		t.Fatal("posting missing after round trip")
	}
	wantP := want.Postings["google_swe_intern_mountain_view"]
	if p.Company != wantP.Company || p.Title != wantP.Title || p.Location != wantP.Location ||
		p.URL != wantP.URL || p.Source != wantP.Source {
		t.Errorf("posting fields changed in round trip: got %+v", p)
	}
	if !p.FirstSeen.Equal(wantP.FirstSeen) {
		t.Errorf("first_seen = %v, want %v", p.FirstSeen, wantP.FirstSeen)
	}
	if p.PostedAt == nil || !p.PostedAt.Equal(*wantP.PostedAt) {
		t.Errorf("posted_at = %v, want %v", p.PostedAt, wantP.PostedAt)
	}
	if !got.LastChecked.Equal(want.LastChecked) {
		t.Errorf("last_checked = %v, want %v", got.LastChecked, want.LastChecked)
	}
	if got.CustomSources["careers page"] != "https://example.com/careers" {
		t.Errorf("custom_sources lost: %v", got.CustomSources)
	}
}

func TestSQLiteStore_UpsertRefreshesExisting(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"), discardLogger())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	st := NewTrackerState()
	st.Postings["acme_intern_nyc"] = model.Posting{
		ID: "acme_intern_nyc", Company: "Acme", Title: "Intern", Location: "NYC",
		FirstSeen: time.Now().UTC().Truncate(time.Second),
	}
	if err := store.Save(st); err != nil {
		t.Fatalf("first save: %v", err)
	}

	refreshed := st.Postings["acme_intern_nyc"]
	refreshed.URL = "https://acme.example/jobs"
	st.Postings["acme_intern_nyc"] = refreshed
	if err := store.Save(st); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Postings) != 1 {
		t.Fatalf("got %d postings, want 1 (upsert, not duplicate)", len(got.Postings))
	}
	if got.Postings["acme_intern_nyc"].URL != "https://acme.example/jobs" {
		t.Error("existing posting should be refreshed in place")
	}
}
