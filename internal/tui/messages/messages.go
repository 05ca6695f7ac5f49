package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"glim/internal/journal/data"
)

// ViewType represents the different views in the application
type ViewType int

const (
	ViewFeed ViewType = iota
	ViewEditor
	ViewCircle
	ViewCountryPicker
	ViewOnboarding
	ViewRecorder
)

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// EntrySavedMsg signals that the editor persisted an entry
type EntrySavedMsg struct {
	Entry data.Entry
}

// EntryDiscardedMsg signals that the editor or recorder was cancelled
type EntryDiscardedMsg struct{}

// RecordingDoneMsg carries a finished voice note back to the feed
type RecordingDoneMsg struct {
	AudioPath    string
	AudioSeconds int
}

// CountryChosenMsg carries the picked dial code back to the caller
type CountryChosenMsg struct {
	Name     string
	DialCode string
}

// DataRefreshMsg signals that entries should be reloaded
type DataRefreshMsg struct{}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}
