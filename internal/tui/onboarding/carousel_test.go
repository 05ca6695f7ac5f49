package onboarding

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"glim/internal/tui/messages"
)

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAutoAdvanceWraps(t *testing.T) {
	m := NewModel()
	m.page = len(pages) - 1

	m, cmd := m.Update(tickMsg{gen: m.gen})
	if m.page != 0 {
		t.Errorf("page = %d after wrap, want 0", m.page)
	}
	if cmd == nil {
		t.Error("auto-advance should reschedule the timer")
	}
}

func TestManualPagingInvalidatesPendingTimer(t *testing.T) {
	m := NewModel()

	m, cmd := m.Update(keyPress("l"))
	if m.page != 1 {
		t.Fatalf("page = %d after l, want 1", m.page)
	}
	if cmd == nil {
		t.Fatal("paging should restart the auto-advance timer")
	}

	// The timer scheduled by Init carries the old generation and must be
	// dropped, not advance the page or spawn another timer
	m, cmd = m.Update(tickMsg{gen: 0})
	if m.page != 1 {
		t.Errorf("stale timer advanced the page to %d", m.page)
	}
	if cmd != nil {
		t.Error("stale timer rescheduled another tick stream")
	}

	// The restarted timer still advances
	m, cmd = m.Update(tickMsg{gen: m.gen})
	if m.page != 2 {
		t.Errorf("page = %d after live tick, want 2", m.page)
	}
	if cmd == nil {
		t.Error("live tick should reschedule the timer")
	}
}

func TestPagingClampsAtEdges(t *testing.T) {
	m := NewModel()

	m, _ = m.Update(keyPress("h"))
	if m.page != 0 {
		t.Errorf("page = %d after h at first page, want 0", m.page)
	}

	m.page = len(pages) - 1
	m, _ = m.Update(keyPress("l"))
	if m.page != len(pages)-1 {
		t.Errorf("page = %d after l at last page, want %d", m.page, len(pages)-1)
	}
}

func TestEnterSwitchesToFeed(t *testing.T) {
	m := NewModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should emit a view switch")
	}
	msg, ok := cmd().(messages.SwitchViewMsg)
	if !ok || msg.View != messages.ViewFeed {
		t.Errorf("expected switch to feed, got %#v", msg)
	}
}
