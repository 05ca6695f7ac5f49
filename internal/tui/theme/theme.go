package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Color palette — ANSI 0-15 + one 256-color accent
// ---------------------------------------------------------------------------

var (
	Text       = lipgloss.Color("7")
	TextMuted  = lipgloss.Color("8")
	TextBright = lipgloss.Color("15")

	Primary       = lipgloss.Color("4")   // blue
	Secondary     = lipgloss.Color("6")   // cyan
	Accent        = lipgloss.Color("5")   // magenta
	Success       = lipgloss.Color("2")   // green
	Warning       = lipgloss.Color("3")   // yellow
	Danger        = lipgloss.Color("1")   // red
	Surface       = lipgloss.Color("236") // dark bg
	Border        = lipgloss.Color("8")   // dim
	BorderFocused = lipgloss.Color("4")   // blue
)

// Emotion glow colors keyed by entry emotion tag. Unknown tags fall back to
// the plain border color.
var emotionColors = map[string]lipgloss.Color{
	"joy":     Warning,
	"calm":    Secondary,
	"sad":     Primary,
	"angry":   Danger,
	"tired":   TextMuted,
	"excited": Accent,
}

// EmotionColor returns the glow color for an emotion tag.
func EmotionColor(emotion string) lipgloss.Color {
	if c, ok := emotionColors[emotion]; ok {
		return c
	}
	return Border
}

// EmotionGlyph returns the header glyph for an emotion tag.
func EmotionGlyph(emotion string) string {
	switch emotion {
	case "joy":
		return "☀"
	case "calm":
		return "≈"
	case "sad":
		return "☂"
	case "angry":
		return "⚡"
	case "tired":
		return "☾"
	case "excited":
		return "✦"
	default:
		return "·"
	}
}

// Emotions lists the pickable emotion tags in display order.
var Emotions = []string{"joy", "calm", "sad", "angry", "tired", "excited"}

// ---------------------------------------------------------------------------
// Semantic text styles
// ---------------------------------------------------------------------------

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subtitle = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	Muted    = lipgloss.NewStyle().Foreground(TextMuted)
	Bold     = lipgloss.NewStyle().Bold(true)

	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	Ok    = lipgloss.NewStyle().Bold(true).Foreground(Success)

	Cursor     = lipgloss.NewStyle().Bold(true).Foreground(Success)
	SelectedBg = lipgloss.NewStyle().Foreground(TextBright).Background(Surface)
)

// ---------------------------------------------------------------------------
// Reusable component helpers
// ---------------------------------------------------------------------------

var (
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Warning)

	ModalHelp = lipgloss.NewStyle().Foreground(TextMuted)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)

	NavActive   = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	NavInactive = lipgloss.NewStyle().Foreground(TextMuted)
)
