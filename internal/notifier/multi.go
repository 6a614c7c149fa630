package notifier

import (
	"time"

	"github.com/Jesterkori/Internship-scraper/internal/model"
)

// Ensure MultiNotifier implements model.Notifier.
var _ model.Notifier = (*MultiNotifier)(nil)

// MultiNotifier fans one alert out to a primary channel plus best-effort
// side channels. Only the primary's error is propagated; side-channel
// failures are swallowed.
type MultiNotifier struct {
	primary model.Notifier
	side    []model.Notifier
}

// NewMultiNotifier combines a primary notifier with best-effort side channels.
func NewMultiNotifier(primary model.Notifier, side ...model.Notifier) *MultiNotifier {
	return &MultiNotifier{primary: primary, side: side}
}

// Notify delivers to the primary channel first, then the side channels.
func (n *MultiNotifier) Notify(postings []model.Posting) error {
	err := n.primary.Notify(postings)
	for _, s := range n.side {
		_ = s.Notify(postings)
	}
	return err
}

// SendTest pushes a dummy posting through the given notifier to verify the
// integration works end to end.
func SendTest(n model.Notifier) error {
	now := time.Now()
	return n.Notify([]model.Posting{{
		ID:        "test_posting",
		Company:   "Internwatch Test",
		Title:     "Test Notification — Integration Verified",
		Location:  "Everywhere",
		URL:       "https://example.com",
		Source:    "test",
		FirstSeen: now,
		PostedAt:  &now,
		IsNew:     true,
	}})
}
