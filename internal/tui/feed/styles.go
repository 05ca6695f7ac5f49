package feed

import (
	"github.com/charmbracelet/lipgloss"

	"glim/internal/tui/theme"
)

var (
	cardBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	headerGlyphStyle = lipgloss.NewStyle().Bold(true)
	headerTimeStyle  = theme.Muted
	headerLangStyle  = theme.Muted

	titleStyle = theme.Bold
	bodyStyle  = lipgloss.NewStyle().Foreground(theme.Text)

	audioStyle = lipgloss.NewStyle().Foreground(theme.Secondary)

	cellStyle = lipgloss.NewStyle().
			Background(theme.Surface).
			Foreground(theme.TextMuted).
			Align(lipgloss.Center, lipgloss.Center)

	badgeStyle = lipgloss.NewStyle().
			Background(theme.Surface).
			Foreground(theme.TextBright).
			Bold(true).
			Align(lipgloss.Center, lipgloss.Center)

	dayHeaderStyle = theme.Subtitle

	emptyFeedStyle = theme.Muted
)
