package circleview

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"glim/internal/circle"
)

type stubService struct {
	joins int
}

func (s *stubService) Join(ctx context.Context, code string) (circle.Circle, error) {
	s.joins++
	return circle.Circle{Name: "Close friends", Code: code}, nil
}

func (s *stubService) Members(ctx context.Context) ([]circle.Member, error) {
	return nil, nil
}

func (s *stubService) Leave(ctx context.Context) error {
	return nil
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEnterIgnoredWhileJoinInFlight(t *testing.T) {
	svc := &stubService{}
	m := NewModel(svc, nil)

	m, _ = m.Update(keyPress("i"))
	if m.mode != modeInvite {
		t.Fatal("i should open the invite modal")
	}
	m.invite.SetValue("ABC123")

	m, first := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if first == nil {
		t.Fatal("first enter should launch the join")
	}
	if !m.joining {
		t.Fatal("first enter should mark a join in flight")
	}

	m, second := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if second != nil {
		t.Error("second enter launched a concurrent join")
	}
	if !m.joining {
		t.Error("second enter cleared the in-flight flag")
	}

	// Only the first command reaches the service
	if _, ok := first().(joinResultMsg); !ok {
		t.Fatal("join command should yield a joinResultMsg")
	}
	if svc.joins != 1 {
		t.Errorf("service saw %d join calls, want 1", svc.joins)
	}
}

func TestMalformedCodeRejectedBeforeService(t *testing.T) {
	svc := &stubService{}
	m := NewModel(svc, nil)

	m, _ = m.Update(keyPress("i"))
	m.invite.SetValue("AB")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("short code should not launch a join")
	}
	if !m.bannerE || m.banner == "" {
		t.Error("short code should raise an error banner")
	}
	if svc.joins != 0 {
		t.Errorf("service saw %d join calls, want 0", svc.joins)
	}
}

func TestJoinSuccessRefreshesMembers(t *testing.T) {
	svc := &stubService{}
	m := NewModel(svc, nil)
	m.mode = modeInvite
	m.joining = true

	m, cmd := m.Update(joinResultMsg{circle: circle.Circle{Name: "Close friends", Code: "ABC123"}})
	if m.joining {
		t.Error("join result should clear the in-flight flag")
	}
	if m.mode != modeList {
		t.Error("successful join should return to the member list")
	}
	if m.current == nil || m.current.Code != "ABC123" {
		t.Errorf("current circle = %+v, want code ABC123", m.current)
	}
	if cmd == nil {
		t.Error("successful join should refresh the member list")
	}
}
