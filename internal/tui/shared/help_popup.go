package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"glim/internal/tui/theme"
)

// HelpBind is one key/description pair shown in the help popup.
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection groups related binds under a heading.
type HelpSection struct {
	Title string
	Binds []HelpBind
}

const helpKeyColumn = 14

var (
	helpSectionStyle = theme.Title
	helpKeyStyle     = theme.Subtitle
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpDismissStyle = theme.HelpHint
)

// RenderHelpPopup draws the keybind reference centered in the window.
func RenderHelpPopup(sections []HelpSection, width, height int) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(helpSectionStyle.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			b.WriteString("  " + helpKeyStyle.Width(helpKeyColumn).Render(bind.Key))
			b.WriteString(helpDescStyle.Render(bind.Desc) + "\n")
		}
	}
	b.WriteString("\n" + helpDismissStyle.Render("Press any key to close"))

	box := theme.ModalBox.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
