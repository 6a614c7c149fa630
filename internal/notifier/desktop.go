package notifier

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/Jesterkori/Internship-scraper/internal/model"
)

// Ensure both variants implement model.Notifier.
var (
	_ model.Notifier = (*DesktopNotifier)(nil)
	_ model.Notifier = (*NopNotifier)(nil)
)

// DesktopNotifier fires a native desktop notification per posting as a
// best-effort side channel. Every failure is swallowed: a missing helper
// binary or a headless session must never affect the cycle.
type DesktopNotifier struct {
	goos string
}

// NewDesktopNotifier returns the platform-native notifier for the current OS.
// Use NewPlatformNotifier to get a no-op when no mechanism is available.
func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{goos: runtime.GOOS}
}

// Notify dispatches one desktop notification per posting. Always returns nil.
func (n *DesktopNotifier) Notify(postings []model.Posting) error {
	for _, p := range postings {
		title := fmt.Sprintf("New internship: %s", p.Company)
		body := fmt.Sprintf("%s — %s", p.Title, p.Location)

		var cmd *exec.Cmd
		switch n.goos {
		case "darwin":
			script := fmt.Sprintf("display notification %q with title %q", body, title)
			cmd = exec.Command("osascript", "-e", script)
		case "linux":
			cmd = exec.Command("notify-send", title, body)
		case "windows":
			cmd = exec.Command("msg", "*", "/TIME:10", title+": "+body)
		default:
			continue
		}
		_ = cmd.Run() // fire and forget
	}
	return nil
}

// NopNotifier is the variant used where no desktop mechanism exists.
type NopNotifier struct{}

func NewNopNotifier() *NopNotifier { return &NopNotifier{} }

func (n *NopNotifier) Notify(_ []model.Posting) error { return nil }

// NewPlatformNotifier detects the runtime environment and returns either the
// desktop notifier or a no-op, so callers never branch on platform.
func NewPlatformNotifier() model.Notifier {
	switch runtime.GOOS {
	case "darwin", "windows":
		return NewDesktopNotifier()
	case "linux":
		// Headless boxes have no notification daemon to talk to.
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return NewNopNotifier()
		}
		return NewDesktopNotifier()
	default:
		return NewNopNotifier()
	}
}
