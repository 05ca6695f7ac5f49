package drawer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"glim/internal/tui/messages"
)

func TestToggleStartsSlide(t *testing.T) {
	m := NewModel()
	if cmd := m.Toggle(); cmd == nil {
		t.Error("opening should start the slide animation")
	}
	if !m.Open {
		t.Error("drawer should be open after toggle")
	}
	if cmd := m.Toggle(); cmd != nil {
		t.Error("closing should not schedule animation frames")
	}
}

func TestNavigateAndSelect(t *testing.T) {
	m := NewModel()
	m.Toggle()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Open {
		t.Error("selecting an item should close the drawer")
	}
	if cmd == nil {
		t.Fatal("selecting an item should emit a view switch")
	}
	msg, ok := cmd().(messages.SwitchViewMsg)
	if !ok || msg.View != messages.ViewCircle {
		t.Errorf("expected switch to circle view, got %#v", msg)
	}
}

func TestQuitItem(t *testing.T) {
	m := NewModel()
	m.Toggle()
	m.cursor = len(items) - 1

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("quit item should emit a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit item should quit the program")
	}
}

func TestOverlayListsDestinations(t *testing.T) {
	m := NewModel()
	m.Toggle()
	m.SetHeight(20)

	bg := strings.TrimRight(strings.Repeat(strings.Repeat(" ", 40)+"\n", 20), "\n")
	out := m.Overlay(bg, 40)
	for _, label := range []string{"Feed", "Circle", "Country code", "Welcome tour", "Quit"} {
		if !strings.Contains(out, label) {
			t.Errorf("overlay missing %q", label)
		}
	}
}
