package feed

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"glim/internal/journal/data"
	"glim/internal/journal/service"
	"glim/internal/logs"
	"glim/internal/tui/messages"
	"glim/internal/tui/shared"
)

// Model is the diary feed: a scrollable list of cards grouped by day.
type Model struct {
	svc        service.EntryService
	entries    []data.Entry
	cursor     int
	scroll     int // index of the first rendered card
	confirm    *ConfirmModal
	dateFormat string
	gridGap    int
	width      int
	height     int

	// now is injectable for tests; defaults to time.Now
	now func() time.Time
}

// NewModel creates the feed over an entry service.
func NewModel(svc service.EntryService, dateFormat string, gridGap int) Model {
	m := Model{
		svc:        svc,
		dateFormat: dateFormat,
		gridGap:    gridGap,
		now:        time.Now,
	}
	m.reload()
	return m
}

func (m *Model) reload() {
	if m.svc == nil {
		return
	}
	entries, err := m.svc.List()
	if err != nil {
		logs.Logger.Printf("feed reload failed: %v", err)
		return
	}
	m.entries = entries
	if m.cursor >= len(entries) {
		m.cursor = max(0, len(entries)-1)
	}
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsTyping reports whether a modal is capturing keys
func (m Model) IsTyping() bool {
	return m.confirm != nil
}

// HintText returns the status-bar hints for the feed
func (m Model) HintText() string {
	if m.confirm != nil {
		return "y:confirm  n/esc:cancel"
	}
	return "j/k:navigate  n:new  r:record  d:delete  c:circle  tab:menu  ?:help  q:quit"
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles feed events, returns (Model, tea.Cmd) as a child view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.DataRefreshMsg:
		if err := m.svc.Reload(); err != nil {
			logs.Logger.Printf("entry reload failed: %v", err)
		}
		m.reload()
		return m, nil

	case ConfirmResultMsg:
		m.confirm = nil
		if msg.Confirmed && m.cursor < len(m.entries) {
			if err := m.svc.Delete(m.entries[m.cursor].ID); err != nil {
				logs.Logger.Printf("delete failed: %v", err)
			}
			m.reload()
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil {
			return m, m.confirm.Update(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
			if m.cursor >= m.scroll+m.visibleCount() {
				m.scroll++
			}
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.scroll {
				m.scroll = m.cursor
			}
		}
	case "g":
		m.cursor = 0
		m.scroll = 0
	case "G":
		m.cursor = max(0, len(m.entries)-1)
		m.scroll = max(0, len(m.entries)-m.visibleCount())
	case "n":
		return m, messages.SwitchView(messages.ViewEditor)
	case "r":
		return m, messages.SwitchView(messages.ViewRecorder)
	case "c":
		return m, messages.SwitchView(messages.ViewCircle)
	case "d":
		if m.cursor < len(m.entries) {
			m.confirm = NewConfirmModal("Delete this entry?", "This removes the file from your journal.", 44)
		}
	}
	return m, nil
}

// visibleCount estimates how many cards fit on screen; used only for
// scroll clamping, the renderer stops at the real boundary.
func (m Model) visibleCount() int {
	if m.height <= 0 {
		return 1
	}
	return max(1, m.height/8)
}

// Selected returns the entry under the cursor, or nil for an empty feed.
func (m Model) Selected() *data.Entry {
	if m.cursor >= len(m.entries) {
		return nil
	}
	return &m.entries[m.cursor]
}

// View renders the feed
func (m Model) View() string {
	if len(m.entries) == 0 {
		empty := emptyFeedStyle.Render("No entries yet. Press n to write your first one.")
		return shared.CenterContent(empty, m.height)
	}

	now := m.now()
	var b strings.Builder
	usedLines := 0
	var lastDay string

	for i := m.scroll; i < len(m.entries); i++ {
		e := m.entries[i]

		var section strings.Builder
		day := dayHeading(now, e.CreatedAt)
		if day != lastDay {
			section.WriteString(dayHeaderStyle.Render(day) + "\n")
		}
		section.WriteString(renderCard(e, m.width, now, m.dateFormat, m.gridGap, i == m.cursor))
		section.WriteString("\n")

		lines := strings.Count(section.String(), "\n")
		if usedLines+lines > m.height && usedLines > 0 {
			break
		}
		lastDay = day
		usedLines += lines
		b.WriteString(section.String())
	}

	view := strings.TrimRight(b.String(), "\n")
	if m.confirm != nil {
		return shared.OverlayCentered(m.confirm.View(), m.width, m.height)
	}
	return view
}

// dayHeading labels a card's day group: Today, Yesterday, or the date.
func dayHeading(now, created time.Time) string {
	nowY, nowM, nowD := now.Date()
	today := time.Date(nowY, nowM, nowD, 0, 0, 0, 0, now.Location())

	switch {
	case !created.Before(today):
		return "Today"
	case !created.Before(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return created.Format("Monday, Jan 2")
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
