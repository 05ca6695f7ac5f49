package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"glim/internal/tui/theme"
)

var (
	confirmBoxStyle   = theme.ModalBox
	confirmTitleStyle = theme.Title
	confirmYesStyle   = theme.Ok
	confirmNoStyle    = theme.Error
)

// ConfirmModal displays a simple yes/no confirmation dialog
type ConfirmModal struct {
	Message string // Primary question
	Details string // Additional context (optional)
	Width   int    // Modal width
}

// ConfirmResultMsg is sent when the user confirms or cancels
type ConfirmResultMsg struct {
	Confirmed bool
	Cancelled bool
}

// NewConfirmModal creates a new confirmation modal
func NewConfirmModal(message, details string, width int) *ConfirmModal {
	return &ConfirmModal{
		Message: message,
		Details: details,
		Width:   width,
	}
}

// Update handles key events for the confirmation modal
func (m *ConfirmModal) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		return func() tea.Msg {
			return ConfirmResultMsg{Confirmed: true}
		}
	case "n", "esc":
		return func() tea.Msg {
			return ConfirmResultMsg{Cancelled: true}
		}
	}
	return nil
}

// View renders the confirmation modal
func (m *ConfirmModal) View() string {
	var content string

	content += confirmTitleStyle.Render(m.Message) + "\n"

	if m.Details != "" {
		content += "\n" + m.Details + "\n"
	}

	content += "\n"
	content += confirmYesStyle.Render("[y]") + " Yes  "
	content += confirmNoStyle.Render("[n/esc]") + " No"

	return confirmBoxStyle.Width(m.Width).Render(content)
}
