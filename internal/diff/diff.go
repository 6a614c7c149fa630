// Package diff computes which fetched postings have not been seen before.
package diff

import "github.com/Jesterkori/Internship-scraper/internal/model"

// New returns the elements of current whose ID is absent from previous,
// in the order they appear in current. The comparison is presence-based: a
// posting whose stored fields changed but whose ID is already known is not
// new. Duplicate IDs within current are not collapsed here; the state merge
// keeps only the last occurrence anyway, since it overwrites by key.
func New(current []model.Posting, previous map[string]model.Posting) []model.Posting {
	var fresh []model.Posting
	for _, p := range current {
		if _, seen := previous[p.ID]; !seen {
			p.IsNew = true
			fresh = append(fresh, p)
		}
	}
	return fresh
}
