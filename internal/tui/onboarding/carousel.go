package onboarding

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"glim/internal/tui/messages"
	"glim/internal/tui/shared"
	"glim/internal/tui/theme"
)

const advanceEvery = 4 * time.Second

var (
	pageTitleStyle = theme.Title
	pageBodyStyle  = lipgloss.NewStyle().Foreground(theme.Text)
	dotActiveStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	dotIdleStyle   = theme.Muted
	pageBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 3).
			Width(52)
)

type page struct {
	title string
	body  string
}

var pages = []page{
	{
		title: "Write it down",
		body:  "Capture a few lines every day. Attach photos, a voice note, and how you felt.",
	},
	{
		title: "Watch it grow",
		body:  "Your feed groups entries by day, with a gentle glow for each mood.",
	},
	{
		title: "Share with your circle",
		body:  "Join a circle with a six-character invite code and keep up with close friends.",
	},
}

// tickMsg drives the auto-advance timer. The generation lets the model drop
// timers scheduled before a manual page change, so only one tick stream is
// ever live.
type tickMsg struct {
	gen int
}

// Model is the onboarding carousel: paged copy, a dot indicator, and a
// timed auto-advance.
type Model struct {
	page   int
	gen    int
	width  int
	height int
}

// NewModel creates the carousel at its first page.
func NewModel() Model {
	return Model{}
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsTyping is always false for the carousel
func (m Model) IsTyping() bool {
	return false
}

// HintText returns the status-bar hints for the carousel
func (m Model) HintText() string {
	return "h/l:pages  enter:start journaling  q:quit"
}

func (m Model) Init() tea.Cmd {
	return tick(m.gen)
}

func tick(gen int) tea.Cmd {
	return tea.Tick(advanceEvery, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Update handles carousel events, returns (Model, tea.Cmd) as a child view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != m.gen {
			// Stale timer from before a manual page change
			return m, nil
		}
		// Auto-advance wraps so the carousel keeps cycling until dismissed
		m.page = (m.page + 1) % len(pages)
		return m, tick(m.gen)

	case tea.KeyMsg:
		switch msg.String() {
		case "l", "right":
			if m.page < len(pages)-1 {
				m.page++
			}
			m.gen++
			return m, tick(m.gen)
		case "h", "left":
			if m.page > 0 {
				m.page--
			}
			m.gen++
			return m, tick(m.gen)
		case "enter":
			return m, messages.SwitchView(messages.ViewFeed)
		}
	}
	return m, nil
}

// View renders the carousel
func (m Model) View() string {
	p := pages[m.page]

	var b strings.Builder
	b.WriteString(pageTitleStyle.Render(p.title) + "\n\n")
	b.WriteString(pageBodyStyle.Render(p.body) + "\n\n")
	b.WriteString(m.dots())

	box := pageBoxStyle.Render(b.String())
	return shared.OverlayCentered(box, m.width, m.height)
}

func (m Model) dots() string {
	var dots []string
	for i := range pages {
		if i == m.page {
			dots = append(dots, dotActiveStyle.Render("●"))
		} else {
			dots = append(dots, dotIdleStyle.Render("○"))
		}
	}
	return strings.Join(dots, " ")
}
