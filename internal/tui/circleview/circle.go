package circleview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"glim/internal/circle"
	"glim/internal/logs"
	"glim/internal/timefmt"
	"glim/internal/tui/messages"
	"glim/internal/tui/shared"
	"glim/internal/tui/theme"
)

var (
	titleStyle     = theme.Title
	ownerStyle     = theme.Warn
	memberStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	joinedAtStyle  = theme.Muted
	codeStyle      = lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	errBannerStyle = theme.Error
	okBannerStyle  = theme.Ok
	inviteBoxStyle = theme.ModalBox
	emptyStyle     = theme.Muted
)

type mode int

const (
	modeList mode = iota
	modeInvite
)

// Model is the circle screen: current membership plus the invite-code
// join flow.
type Model struct {
	svc     circle.Service
	current *circle.Circle
	members []circle.Member
	cursor  int
	mode    mode
	invite  textinput.Model
	banner  string
	bannerE bool // banner is an error
	joining bool
	width   int
	height  int
}

// membersLoadedMsg carries the member list fetched from the service
type membersLoadedMsg struct {
	members []circle.Member
	err     error
}

// joinResultMsg carries the outcome of a join attempt
type joinResultMsg struct {
	circle circle.Circle
	err    error
}

// leftMsg signals the circle was left
type leftMsg struct{ err error }

// NewModel creates the circle screen.
func NewModel(svc circle.Service, current *circle.Circle) Model {
	ti := textinput.New()
	ti.Placeholder = "ABC-123"
	ti.CharLimit = circle.InviteCodeLength + 1 // room for the hyphen
	ti.Width = 12

	return Model{
		svc:     svc,
		current: current,
		invite:  ti,
	}
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsTyping reports whether the invite modal is capturing keys
func (m Model) IsTyping() bool {
	return m.mode == modeInvite
}

// HintText returns the status-bar hints for the circle screen
func (m Model) HintText() string {
	if m.mode == modeInvite {
		return "enter:join  esc:cancel"
	}
	if m.current == nil {
		return "i:enter invite code  esc:back  q:quit"
	}
	return "j/k:navigate  L:leave circle  esc:back  q:quit"
}

func (m Model) Init() tea.Cmd {
	return m.fetchMembers()
}

func (m *Model) fetchMembers() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		members, err := svc.Members(ctx)
		return membersLoadedMsg{members: members, err: err}
	}
}

func joinCmd(svc circle.Service, code string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		joined, err := svc.Join(ctx, code)
		return joinResultMsg{circle: joined, err: err}
	}
}

func leaveCmd(svc circle.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return leftMsg{err: svc.Leave(ctx)}
	}
}

// Update handles circle events, returns (Model, tea.Cmd) as a child view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case membersLoadedMsg:
		if msg.err != nil {
			logs.Logger.Printf("load members failed: %v", msg.err)
			return m, nil
		}
		m.members = msg.members
		if m.cursor >= len(m.members) {
			m.cursor = 0
		}
		return m, nil

	case joinResultMsg:
		m.joining = false
		if msg.err != nil {
			m.banner = joinErrorText(msg.err)
			m.bannerE = true
			return m, nil
		}
		m.current = &msg.circle
		m.mode = modeList
		m.banner = "Joined " + msg.circle.Name
		m.bannerE = false
		return m, m.fetchMembers()

	case leftMsg:
		if msg.err != nil {
			m.banner = "Could not leave: " + msg.err.Error()
			m.bannerE = true
			return m, nil
		}
		m.current = nil
		m.members = nil
		m.banner = "Left the circle"
		m.bannerE = false
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeInvite {
			return m.updateInvite(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, messages.SwitchView(messages.ViewFeed)
	case "i":
		if m.current == nil {
			m.mode = modeInvite
			m.invite.SetValue("")
			m.invite.Focus()
			m.banner = ""
			return m, textinput.Blink
		}
	case "L":
		if m.current != nil {
			return m, leaveCmd(m.svc)
		}
	case "j", "down":
		if m.cursor < len(m.members)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	}
	return m, nil
}

func (m Model) updateInvite(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.invite.Blur()
		return m, nil

	case "enter":
		if m.joining {
			// A join is already in flight
			return m, nil
		}
		code := circle.NormalizeInviteCode(m.invite.Value())
		if !circle.ValidateInviteCodeFormat(code) {
			m.banner = fmt.Sprintf("Codes are %d letters and digits", circle.InviteCodeLength)
			m.bannerE = true
			return m, nil
		}
		m.joining = true
		m.banner = ""
		return m, joinCmd(m.svc, code)
	}

	var cmd tea.Cmd
	m.invite, cmd = m.invite.Update(msg)

	// Normalize as the user types; the hyphen is display-only
	code := circle.NormalizeInviteCode(m.invite.Value())
	m.invite.SetValue(circle.FormatInviteCode(code))
	m.invite.CursorEnd()
	return m, cmd
}

func joinErrorText(err error) string {
	switch {
	case errors.Is(err, circle.ErrRateLimited):
		return "Too many attempts. Wait a minute and try again."
	case errors.Is(err, circle.ErrCodeNotFound):
		return "That invite code doesn't match any circle."
	case errors.Is(err, circle.ErrAlreadyMember):
		return "You're already in this circle."
	default:
		return "Could not join: " + err.Error()
	}
}

// View renders the circle screen
func (m Model) View() string {
	if m.mode == modeInvite {
		return m.viewInvite()
	}

	var b strings.Builder
	if m.current == nil {
		b.WriteString(titleStyle.Render("Your circle") + "\n\n")
		b.WriteString(emptyStyle.Render("You haven't joined a circle yet.") + "\n")
		b.WriteString(emptyStyle.Render("Press i to enter an invite code from a friend.") + "\n")
	} else {
		b.WriteString(titleStyle.Render(m.current.Name) + "  " +
			codeStyle.Render(circle.FormatInviteCode(m.current.Code)) + "\n\n")
		now := time.Now()
		for i, member := range m.members {
			cursor := "  "
			if i == m.cursor {
				cursor = theme.Cursor.Render("> ")
			}
			name := memberStyle.Render(member.Name)
			if member.IsOwner {
				name = ownerStyle.Render(member.Name + " (owner)")
			}
			joined := joinedAtStyle.Render("joined " + timefmt.Relative(now, member.JoinedAt, nil))
			b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, name, joined))
		}
	}

	if m.banner != "" {
		style := okBannerStyle
		if m.bannerE {
			style = errBannerStyle
		}
		b.WriteString("\n" + style.Render(m.banner) + "\n")
	}

	return shared.CenterContent(b.String(), m.height)
}

func (m Model) viewInvite() string {
	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render("Join a circle") + "\n\n")
	b.WriteString("Invite code: " + m.invite.View() + "\n")
	if m.joining {
		b.WriteString("\n" + emptyStyle.Render("Joining…") + "\n")
	}
	if m.banner != "" && m.bannerE {
		b.WriteString("\n" + errBannerStyle.Render(m.banner) + "\n")
	}
	b.WriteString("\n" + theme.ModalHelp.Render(m.HintText()))

	box := inviteBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
	return shared.OverlayCentered(box, m.width, m.height)
}
