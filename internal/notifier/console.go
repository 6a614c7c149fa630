package notifier

import (
	"log/slog"

	"github.com/Jesterkori/Internship-scraper/internal/model"
)

// Ensure ConsoleNotifier implements model.Notifier.
var _ model.Notifier = (*ConsoleNotifier)(nil)

// ConsoleNotifier writes new postings to the given logger as structured
// messages. This is the primary output channel; it cannot fail.
type ConsoleNotifier struct {
	logger *slog.Logger
}

// NewConsoleNotifier returns a notifier that logs each posting via slog.
func NewConsoleNotifier(logger *slog.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger}
}

// Notify logs each posting with company, title, location, source, and URL.
func (n *ConsoleNotifier) Notify(postings []model.Posting) error {
	for _, p := range postings {
		args := []any{
			"company", p.Company,
			"title", p.Title,
			"location", p.Location,
			"source", p.Source,
			"url", p.URL,
		}
		if p.PostedAt != nil {
			args = append(args, "posted_at", *p.PostedAt)
		}
		n.logger.Info("new internship posting", args...)
	}
	return nil
}
