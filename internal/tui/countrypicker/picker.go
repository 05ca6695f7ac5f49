package countrypicker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"glim/internal/circle"
	"glim/internal/tui/messages"
	"glim/internal/tui/theme"
)

var (
	pickerTitleStyle = theme.Title
	dialStyle        = lipgloss.NewStyle().Foreground(theme.Secondary).Width(6)
	isoStyle         = theme.Muted
	selectedStyle    = theme.SelectedBg
	searchStyle      = theme.Muted
)

type pickerMode int

const (
	modeList pickerMode = iota
	modeSearch
)

// Model is the phone-login country dial-code picker with fuzzy search.
type Model struct {
	countries []circle.Country
	filtered  []circle.Country
	selected  int
	mode      pickerMode
	search    textinput.Model
	query     string
	width     int
	height    int
}

// NewModel creates the picker over the full country table.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "Search countries..."
	ti.CharLimit = 40
	ti.Width = 30

	return Model{
		countries: circle.Countries,
		filtered:  circle.Countries,
		search:    ti,
	}
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsTyping reports whether the search input is capturing keys
func (m Model) IsTyping() bool {
	return m.mode == modeSearch
}

// HintText returns the status-bar hints for the picker
func (m Model) HintText() string {
	if m.mode == modeSearch {
		return "type to filter  enter:confirm  esc:cancel"
	}
	return "j/k:navigate  /:search  enter:select  esc:back  q:quit"
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) applyFilter() {
	m.filtered = circle.SearchCountries(m.query)
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

// Update handles picker events, returns (Model, tea.Cmd) as a child view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeSearch:
			return m.updateSearch(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "/":
		m.mode = modeSearch
		m.search.SetValue(m.query)
		m.search.Focus()
		return m, textinput.Blink
	case "enter":
		if m.selected < len(m.filtered) {
			chosen := m.filtered[m.selected]
			return m, func() tea.Msg {
				return messages.CountryChosenMsg{Name: chosen.Name, DialCode: chosen.DialCode}
			}
		}
	case "esc":
		return m, messages.SwitchView(messages.ViewCircle)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeList
		m.search.Blur()
		return m, nil
	case "esc":
		m.mode = modeList
		m.query = ""
		m.search.SetValue("")
		m.search.Blur()
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.query = m.search.Value()
	m.applyFilter()
	return m, cmd
}

// View renders the picker
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("Country code") + "\n")

	if m.mode == modeSearch {
		b.WriteString(m.search.View() + "\n")
	} else if m.query != "" {
		b.WriteString(searchStyle.Render("filter: "+m.query) + "\n")
	}
	b.WriteString("\n")

	visible := m.height - 5
	if visible < 1 {
		visible = 1
	}

	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}

	for i := start; i < len(m.filtered) && i < start+visible; i++ {
		c := m.filtered[i]
		line := fmt.Sprintf("%s %s  %s",
			dialStyle.Render(c.DialCode),
			c.Name,
			isoStyle.Render(c.ISO))
		if i == m.selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(searchStyle.Render("No countries match") + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
