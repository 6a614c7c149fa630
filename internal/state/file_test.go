package state

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Jesterkori/Internship-scraper/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleState() *TrackerState {
	posted := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	st := NewTrackerState()
	st.LastChecked = time.Date(2026, 3, 2, 12, 0, 5, 0, time.UTC)
	st.CustomSources["careers page"] = "https://example.com/careers"
	st.Postings["google_swe_intern_mountain_view"] = model.Posting{
		ID:        "google_swe_intern_mountain_view",
		Company:   "Google",
		Title:     "SWE Intern",
		Location:  "Mountain View",
		URL:       "https://careers.google.com",
		Source:    "listing",
		FirstSeen: time.Date(2026, 3, 1, 10, 0, 1, 0, time.UTC),
		PostedAt:  &posted,
	}
	return st
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileStore(path, discardLogger())

	want := sampleState()
	if err := store.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(got.Postings) != 1 {
		t.Fatalf("got %d postings, want 1", len(got.Postings))
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

func TestFileStore_MissingFileLoadsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"), discardLogger())
	st, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(st.Postings) != 0 {
		t.Errorf("got %d postings, want 0", len(st.Postings))
	}
	if st.CustomSources == nil {
		t.Error("custom sources map should be initialized")
	}
}

func TestFileStore_CorruptFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(path, discardLogger())
	st, err := store.Load()
	if err != nil {
		t.Fatalf("load should not fail on corrupt file: %v", err)
	}
	if len(st.Postings) != 0 {
		t.Errorf("got %d postings, want 0", len(st.Postings))
	}
}

func TestFileStore_SchemaMismatchResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte(`{"schema_version": 99, "postings": {"x": {"id": "x"}}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(path, discardLogger())
	st, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(st.Postings) != 0 {
		t.Errorf("unknown schema version should reset, got %d postings", len(st.Postings))
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileStore(path, discardLogger())

	first := sampleState()
	if err := store.Save(first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := NewTrackerState()
	second.Postings["other_intern_remote"] = model.Posting{ID: "other_intern_remote", Company: "Other", Title: "Intern"}
	if err := store.Save(second); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Postings) != 1 {
		t.Fatalf("got %d postings, want 1 (save replaces, not appends)", len(got.Postings))
	}
	if _, ok := got.Postings["other_intern_remote"]; !ok {
		t.Error("second snapshot missing after overwrite")
	}
}
