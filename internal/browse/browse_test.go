package browse

import (
	"strings"
	"testing"
	"time"

	"github.com/Jesterkori/Internship-scraper/internal/model"
	"github.com/Jesterkori/Internship-scraper/internal/state"
)

func TestPlain_Empty(t *testing.T) {
	out := Plain(state.NewTrackerState())
	if !strings.Contains(out, "no postings") {
		t.Errorf("unexpected output for empty state: %q", out)
	}
}

func TestPlain_SortsNewestFirst(t *testing.T) {
	st := state.NewTrackerState()
	st.Postings["old_co_intern_us"] = model.Posting{
		ID: "old_co_intern_us", Company: "OldCo", Title: "Intern", Location: "US",
		FirstSeen: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	st.Postings["new_co_intern_us"] = model.Posting{
		ID: "new_co_intern_us", Company: "NewCo", Title: "Intern", Location: "US",
		FirstSeen: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	out := Plain(st)
	newIdx := strings.Index(out, "NewCo")
	oldIdx := strings.Index(out, "OldCo")
	if newIdx == -1 || oldIdx == -1 {
		t.Fatalf("postings missing from output:\n%s", out)
	}
	if newIdx > oldIdx {
		t.Error("newest posting should be listed first")
	}
}
