package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"glim/internal/journal/data"
	"glim/internal/journal/service"
	"glim/internal/logs"
	"glim/internal/tui/messages"
	"glim/internal/tui/theme"
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(theme.Secondary).Width(10)
	boxStyle    = theme.ModalBox
	emotionOn   = lipgloss.NewStyle().Bold(true)
	emotionOff  = theme.Muted
	editorTitle = theme.Title
	editorHelp  = theme.ModalHelp
	errorBanner = theme.Error
)

type focusField int

const (
	focusTitle focusField = iota
	focusBody
	focusEmotion
)

// Model is the entry composer: title input, body textarea, emotion picker.
type Model struct {
	svc        service.EntryService
	titleInput textinput.Model
	body       textarea.Model
	focus      focusField
	emotionIdx int
	hasEmotion bool
	draft      data.Entry // carries audio metadata from the recorder
	errText    string
	width      int
	height     int
}

// NewModel creates an empty composer.
func NewModel(svc service.EntryService) Model {
	ti := textinput.New()
	ti.Placeholder = "Title (optional)"
	ti.CharLimit = 120
	ti.Width = 50

	ta := textarea.New()
	ta.Placeholder = "What happened today?"
	ta.SetWidth(50)
	ta.SetHeight(8)
	ta.CharLimit = 0

	return Model{
		svc:        svc,
		titleInput: ti,
		body:       ta,
		focus:      focusBody,
	}
}

// Reset clears the composer for a fresh entry, keeping any draft metadata
// handed over by the recorder.
func (m *Model) Reset(draft data.Entry) {
	m.titleInput.SetValue(draft.Title)
	m.body.SetValue(draft.OriginalText)
	m.draft = draft
	m.focus = focusBody
	m.hasEmotion = draft.Emotion != ""
	m.emotionIdx = 0
	m.errText = ""
	for i, e := range theme.Emotions {
		if e == draft.Emotion {
			m.emotionIdx = i
		}
	}
	m.body.Focus()
	m.titleInput.Blur()
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := width - 12
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	m.titleInput.Width = w
	m.body.SetWidth(w)
}

// IsTyping is always true while the editor is open
func (m Model) IsTyping() bool {
	return true
}

// HintText returns the status-bar hints for the editor
func (m Model) HintText() string {
	return "tab:next field  ctrl+s:save  esc:discard"
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles composer events, returns (Model, tea.Cmd) as a child view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return messages.EntryDiscardedMsg{} }

		case "ctrl+s":
			return m.save()

		case "tab":
			m.focus = (m.focus + 1) % 3
			m.syncFocus()
			return m, nil

		case "shift+tab":
			m.focus = (m.focus + 2) % 3
			m.syncFocus()
			return m, nil
		}

		if m.focus == focusEmotion {
			switch msg.String() {
			case "left", "h":
				m.hasEmotion = true
				m.emotionIdx = (m.emotionIdx + len(theme.Emotions) - 1) % len(theme.Emotions)
				return m, nil
			case "right", "l":
				m.hasEmotion = true
				m.emotionIdx = (m.emotionIdx + 1) % len(theme.Emotions)
				return m, nil
			case "backspace", "x":
				m.hasEmotion = false
				return m, nil
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case focusBody:
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m *Model) syncFocus() {
	m.titleInput.Blur()
	m.body.Blur()
	switch m.focus {
	case focusTitle:
		m.titleInput.Focus()
	case focusBody:
		m.body.Focus()
	}
}

func (m Model) save() (Model, tea.Cmd) {
	body := strings.TrimSpace(m.body.Value())
	title := strings.TrimSpace(m.titleInput.Value())
	if body == "" && title == "" && !m.draft.HasAudio() {
		m.errText = "Nothing to save yet"
		return m, nil
	}

	draft := m.draft
	draft.Title = title
	draft.OriginalText = body
	if m.hasEmotion {
		draft.Emotion = theme.Emotions[m.emotionIdx]
	} else {
		draft.Emotion = ""
	}

	saved, err := m.svc.Add(draft)
	if err != nil {
		logs.Logger.Printf("save entry failed: %v", err)
		m.errText = "Could not save: " + err.Error()
		return m, nil
	}
	return m, func() tea.Msg { return messages.EntrySavedMsg{Entry: *saved} }
}

// View renders the composer
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(editorTitle.Render("New entry") + "\n\n")

	b.WriteString(labelStyle.Render("Title") + m.titleInput.View() + "\n\n")
	b.WriteString(m.body.View() + "\n\n")

	b.WriteString(labelStyle.Render("Feeling"))
	for i, e := range theme.Emotions {
		glyph := theme.EmotionGlyph(e) + " " + e
		if m.hasEmotion && i == m.emotionIdx {
			b.WriteString(emotionOn.Foreground(theme.EmotionColor(e)).Render("["+glyph+"]") + " ")
		} else {
			b.WriteString(emotionOff.Render(" "+glyph+" ") + " ")
		}
	}
	b.WriteString("\n")

	if m.draft.HasAudio() {
		b.WriteString("\n" + theme.Subtitle.Render("voice note attached") + "\n")
	}
	if m.errText != "" {
		b.WriteString("\n" + errorBanner.Render(m.errText) + "\n")
	}

	b.WriteString("\n" + editorHelp.Render(m.HintText()))

	box := boxStyle.Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
