// Package browse renders the retained postings, either as an interactive
// viewport browser or as plain text.
package browse

import (
	"fmt"
	"os/exec"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jesterkori/Internship-scraper/internal/model"
	"github.com/Jesterkori/Internship-scraper/internal/state"
)

// Lines per posting in the list (title + subtitle + blank separator).
const itemHeight = 3

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("39")) // bright blue

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")) // dim gray

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24"))

	selectedSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("24"))
)

type browseModel struct {
	postings    []model.Posting
	lastChecked time.Time
	vp          viewport.Model
	cursor      int
	width       int
	height      int
	ready       bool
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp = viewport.New(msg.Width-2, msg.Height-5)
		m.vp.SetContent(m.renderList())
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.vp.SetContent(m.renderList())
			m.ensureCursorVisible()
			return m, nil
		case "down", "j":
			if m.cursor < len(m.postings)-1 {
				m.cursor++
			}
			m.vp.SetContent(m.renderList())
			m.ensureCursorVisible()
			return m, nil
		case "enter", "o":
			if m.cursor < len(m.postings) {
				openURL(m.postings[m.cursor].URL)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *browseModel) ensureCursorVisible() {
	top := m.cursor * itemHeight
	bottom := top + itemHeight
	if top < m.vp.YOffset {
		m.vp.SetYOffset(top)
	} else if bottom > m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(bottom - m.vp.Height)
	}
}

func (m browseModel) renderList() string {
	var b strings.Builder
	for i, p := range m.postings {
		title := fmt.Sprintf("%s — %s", p.Company, p.Title)
		subtitle := fmt.Sprintf("%s · %s · seen %s", p.Location, p.Source, p.FirstSeen.Format("Jan 2 15:04"))
		if i == m.cursor {
			b.WriteString(selectedTitleStyle.Render(title) + "\n")
			b.WriteString(selectedSubtitleStyle.Render("  "+subtitle) + "\n\n")
		} else {
			b.WriteString(titleStyle.Render(title) + "\n")
			b.WriteString(subtitleStyle.Render("  "+subtitle) + "\n\n")
		}
	}
	return b.String()
}

func (m browseModel) View() string {
	if !m.ready {
		return "loading..."
	}

	header := headerStyle.Render(fmt.Sprintf("Tracked internships (%d) — last check %s",
		len(m.postings), m.lastChecked.Format("Jan 2 15:04")))
	status := statusBarStyle.Render("↑/↓ move · enter/o open · q quit")

	return header + "\n" + borderStyle.Width(m.width-2).Render(m.vp.View()) + "\n" + status
}

// openURL opens url in the default system browser, fire-and-forget.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}
	_ = cmd.Start()
}

// sorted returns the postings newest-first, company as tie-break, so the
// display order is stable even though the state map is not.
func sorted(st *state.TrackerState) []model.Posting {
	postings := make([]model.Posting, 0, len(st.Postings))
	for _, p := range st.Postings {
		postings = append(postings, p)
	}
	sort.Slice(postings, func(i, j int) bool {
		if !postings[i].FirstSeen.Equal(postings[j].FirstSeen) {
			return postings[i].FirstSeen.After(postings[j].FirstSeen)
		}
		return postings[i].Company < postings[j].Company
	})
	return postings
}

// Run launches the interactive browser over the given state.
func Run(st *state.TrackerState) error {
	m := browseModel{
		postings:    sorted(st),
		lastChecked: st.LastChecked,
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

// Plain renders the postings as a plain-text table for non-interactive use.
func Plain(st *state.TrackerState) string {
	postings := sorted(st)
	if len(postings) == 0 {
		return "no postings tracked yet\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d tracked postings, last check %s\n\n",
		len(postings), st.LastChecked.Format(time.RFC1123))
	for _, p := range postings {
		fmt.Fprintf(&b, "%-28s %-40s %-20s %s\n", p.Company, p.Title, p.Location, p.Source)
	}
	return b.String()
}
