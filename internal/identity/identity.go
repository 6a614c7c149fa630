// Package identity derives the stable deduplication key for a posting.
package identity

import (
	"regexp"
	"strings"
)

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// ID returns a deterministic identifier for the (company, title, location)
// triple. The three parts are joined, lowercased, every run of characters
// outside [a-z0-9] becomes a single underscore, and leading/trailing
// underscores are dropped. Variants that differ only in case or punctuation
// collapse to the same ID, which is what makes cross-run dedup work.
func ID(company, title, location string) string {
	joined := strings.ToLower(company + " " + title + " " + location)
	slug := nonAlnumRegex.ReplaceAllString(joined, "_")
	return strings.Trim(slug, "_")
}
