package drawer

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"glim/internal/tui/messages"
	"glim/internal/tui/theme"
)

const (
	slideEvery  = 30 * time.Millisecond
	slideFrames = 3
	drawerWidth = 24
)

var (
	drawerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2)
	drawerTitleStyle = theme.Title
)

// item is one drawer destination
type item struct {
	label string
	view  messages.ViewType
	quit  bool
}

var items = []item{
	{label: "Feed", view: messages.ViewFeed},
	{label: "Circle", view: messages.ViewCircle},
	{label: "Country code", view: messages.ViewCountryPicker},
	{label: "Welcome tour", view: messages.ViewOnboarding},
	{label: "Quit", quit: true},
}

// slideMsg advances the slide-in animation
type slideMsg time.Time

// Model is the navigation drawer, rendered as a left overlay with a short
// slide-in.
type Model struct {
	Open   bool
	cursor int
	frame  int
	height int
}

// NewModel creates a closed drawer.
func NewModel() Model {
	return Model{}
}

// Toggle opens or closes the drawer, restarting the slide animation on open.
func (m *Model) Toggle() tea.Cmd {
	m.Open = !m.Open
	if !m.Open {
		return nil
	}
	m.frame = 0
	return slide()
}

func slide() tea.Cmd {
	return tea.Tick(slideEvery, func(t time.Time) tea.Msg {
		return slideMsg(t)
	})
}

// SetHeight updates the drawer height
func (m *Model) SetHeight(height int) {
	m.height = height
}

// HintText returns the status-bar hints while the drawer is open
func (m Model) HintText() string {
	return "j/k:navigate  enter:go  tab/esc:close"
}

// Update handles drawer events
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case slideMsg:
		if !m.Open || m.frame >= slideFrames {
			return m, nil
		}
		m.frame++
		return m, slide()

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(items)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			m.Open = false
			chosen := items[m.cursor]
			if chosen.quit {
				return m, tea.Quit
			}
			return m, messages.SwitchView(chosen.view)
		case "tab", "esc":
			m.Open = false
		}
	}
	return m, nil
}

// Overlay renders the drawer over the given background view.
func (m Model) Overlay(background string, width int) string {
	if !m.Open {
		return background
	}

	var b strings.Builder
	b.WriteString(drawerTitleStyle.Render("glim") + "\n\n")
	for i, it := range items {
		if i == m.cursor {
			b.WriteString(theme.NavActive.Render("▸ "+it.label) + "\n")
		} else {
			b.WriteString(theme.NavInactive.Render("  "+it.label) + "\n")
		}
	}

	// Slide in from the left edge
	w := drawerWidth * (m.frame + 1) / (slideFrames + 1)
	if w < 10 {
		w = 10
	}
	box := drawerBoxStyle.Width(w).Render(strings.TrimRight(b.String(), "\n"))

	bgLines := strings.Split(background, "\n")
	boxLines := strings.Split(box, "\n")
	for i := range boxLines {
		if i < len(bgLines) {
			bgLines[i] = boxLines[i]
		} else {
			bgLines = append(bgLines, boxLines[i])
		}
	}
	return strings.Join(bgLines, "\n")
}
