package shared

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderHelpPopup(t *testing.T) {
	sections := []HelpSection{
		{Title: "Feed", Binds: []HelpBind{
			{Key: "j/k", Desc: "Move between entries"},
			{Key: "n", Desc: "Write a new entry"},
		}},
		{Title: "Everywhere", Binds: []HelpBind{
			{Key: "q", Desc: "Quit"},
		}},
	}

	out := RenderHelpPopup(sections, 80, 24)

	for _, want := range []string{
		"Feed", "j/k", "Move between entries",
		"Everywhere", "Quit",
		"Press any key to close",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("popup missing %q", want)
		}
	}

	if w := lipgloss.Width(out); w != 80 {
		t.Errorf("popup width = %d, want 80", w)
	}
	if h := lipgloss.Height(out); h != 24 {
		t.Errorf("popup height = %d, want 24", h)
	}
}
