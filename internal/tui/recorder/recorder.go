package recorder

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"glim/internal/tui/messages"
	"glim/internal/tui/shared"
	"glim/internal/tui/theme"
)

const pulseEvery = 120 * time.Millisecond

var (
	waveStyle    = lipgloss.NewStyle().Foreground(theme.Danger)
	clockStyle   = lipgloss.NewStyle().Bold(true).Foreground(theme.TextBright)
	recBoxStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Danger).
			Padding(1, 3)
	recHelpStyle = theme.ModalHelp
	recDotStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Danger)
)

// waveFrames is the pulse animation cycled while recording.
var waveFrames = []string{
	"▁▂▃▅▃▂▁▂▄▆▄▂▁▃▅▇▅▃▁",
	"▂▃▅▆▅▃▂▃▅▇▅▃▂▄▆▇▆▄▂",
	"▃▅▆▇▆▅▃▄▆▇▆▄▃▅▇█▇▅▃",
	"▂▃▅▆▅▃▂▃▅▇▅▃▂▄▆▇▆▄▂",
}

// pulseMsg advances the waveform animation
type pulseMsg time.Time

// Model is the voice-note recording screen. The actual audio capture is an
// external collaborator; this view owns only the recording UI state.
type Model struct {
	recording bool
	frame     int
	started   time.Time
	elapsed   time.Duration
	width     int
	height    int

	// now is injectable for tests
	now func() time.Time
}

// NewModel creates the recorder screen.
func NewModel() Model {
	return Model{now: time.Now}
}

// Start begins a new recording session.
func (m *Model) Start() tea.Cmd {
	m.recording = true
	m.frame = 0
	m.started = m.now()
	m.elapsed = 0
	return pulse()
}

func pulse() tea.Cmd {
	return tea.Tick(pulseEvery, func(t time.Time) tea.Msg {
		return pulseMsg(t)
	})
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsTyping is always false for the recorder
func (m Model) IsTyping() bool {
	return false
}

// HintText returns the status-bar hints for the recorder
func (m Model) HintText() string {
	return "space:stop and save  esc:discard"
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles recorder events, returns (Model, tea.Cmd) as a child view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pulseMsg:
		if !m.recording {
			// Animation stops once the view is dismissed
			return m, nil
		}
		m.frame = (m.frame + 1) % len(waveFrames)
		m.elapsed = m.now().Sub(m.started)
		return m, pulse()

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "space":
			if !m.recording {
				return m, nil
			}
			m.recording = false
			seconds := int(m.now().Sub(m.started).Seconds())
			if seconds < 1 {
				seconds = 1
			}
			name := fmt.Sprintf("voice-%s.wav", m.started.Format("20060102-150405"))
			return m, func() tea.Msg {
				return messages.RecordingDoneMsg{AudioPath: name, AudioSeconds: seconds}
			}

		case "esc":
			m.recording = false
			return m, func() tea.Msg { return messages.EntryDiscardedMsg{} }
		}
	}
	return m, nil
}

// View renders the recorder
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(recDotStyle.Render("● REC") + "  " + clockStyle.Render(formatElapsed(m.elapsed)) + "\n\n")
	b.WriteString(waveStyle.Render(waveFrames[m.frame]) + "\n\n")
	b.WriteString(recHelpStyle.Render(m.HintText()))

	box := recBoxStyle.Render(b.String())
	return shared.OverlayCentered(box, m.width, m.height)
}

func formatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
