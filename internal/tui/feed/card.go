package feed

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"glim/internal/classify"
	"glim/internal/grid"
	"glim/internal/journal/data"
	"glim/internal/timefmt"
	"glim/internal/tui/theme"
)

const previewLines = 4

// renderCard assembles one diary card: emotion glow border, header with
// relative time, classified content block, audio affordance, and the image
// grid. Pure function of its inputs.
func renderCard(e data.Entry, width int, now time.Time, dateFormat string, gap int, selected bool) string {
	innerWidth := width - 4 // border + padding
	if innerWidth < 10 {
		innerWidth = 10
	}

	var blocks []string
	blocks = append(blocks, renderHeader(e, now, dateFormat, innerWidth))

	kind := classify.Classify(e)
	if kind == classify.Mixed {
		if text := renderContent(e, innerWidth); text != "" {
			blocks = append(blocks, text)
		}
	}

	if e.HasAudio() {
		blocks = append(blocks, renderAudio(e))
	}

	if len(e.Images) > 0 {
		layout := grid.Compute(len(e.Images), innerWidth, gap, grid.CardPolicy)
		blocks = append(blocks, renderImageGrid(e.Images, layout, innerWidth, gap))
	}

	box := cardBoxStyle.
		Width(width - 2).
		BorderForeground(theme.EmotionColor(e.Emotion))
	if selected {
		box = box.BorderForeground(theme.BorderFocused)
	}
	return box.Render(strings.Join(blocks, "\n"))
}

func renderHeader(e data.Entry, now time.Time, dateFormat string, width int) string {
	glyph := headerGlyphStyle.
		Foreground(theme.EmotionColor(e.Emotion)).
		Render(theme.EmotionGlyph(e.Emotion))

	when := headerTimeStyle.Render(timefmt.Relative(now, e.CreatedAt, func(t time.Time) string {
		return t.Format(dateFormat)
	}))

	left := glyph + " " + when
	if e.Language == "" {
		return left
	}

	lang := headerLangStyle.Render(e.Language)
	pad := width - lipgloss.Width(left) - lipgloss.Width(lang)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + lang
}

func renderContent(e data.Entry, width int) string {
	var lines []string
	if title := strings.TrimSpace(e.Title); title != "" {
		lines = append(lines, titleStyle.Render(truncate(title, width)))
	}
	if body := strings.TrimSpace(e.DisplayText()); body != "" {
		preview := previewText(body, width)
		lines = append(lines, bodyStyle.Width(width).Render(preview))
	}
	return strings.Join(lines, "\n")
}

// previewText flattens the body to a single paragraph and truncates it to
// the card's preview budget. CJK text gets half the rune budget since its
// runes render double-width.
func previewText(body string, width int) string {
	flat := strings.Join(strings.Fields(body), " ")

	budget := width * previewLines
	if classify.DetectScript(flat) == classify.ScriptCJK {
		budget /= 2
	}

	runes := []rune(flat)
	if len(runes) <= budget {
		return flat
	}
	return string(runes[:budget-1]) + "…"
}

func renderAudio(e data.Entry) string {
	return audioStyle.Render(fmt.Sprintf("▶ voice note  %d:%02d", e.AudioSeconds/60, e.AudioSeconds%60))
}

// renderImageGrid draws placeholder cells for each displayed image, the last
// cell carrying the "+N" badge when images overflow the display cap.
func renderImageGrid(images []string, l grid.Layout, availableWidth, gap int) string {
	if l.DisplayedCount == 0 {
		return ""
	}

	var rows []string
	idx := 0
	for row := 0; row < l.Rows; row++ {
		remaining := l.DisplayedCount - idx
		cols := l.Columns
		if remaining < cols {
			cols = remaining
		}

		widths := l.RowWidths(availableWidth, gap)
		var cells []string
		for col := 0; col < cols; col++ {
			w := l.CellWidth
			if cols == l.Columns {
				w = widths[col]
			}

			label := truncate(path.Base(images[idx]), w-2)
			style := cellStyle
			if idx == l.DisplayedCount-1 && l.OverflowCount > 0 {
				label = l.Badge()
				style = badgeStyle
			}
			cells = append(cells, style.Width(w).Height(l.CellHeight).Render(label))
			idx++
		}

		line := lipgloss.JoinHorizontal(lipgloss.Top, interleaveGaps(cells, gap, l.CellHeight)...)
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

func interleaveGaps(cells []string, gap, height int) []string {
	if gap <= 0 || len(cells) < 2 {
		return cells
	}
	spacer := lipgloss.NewStyle().Width(gap).Height(height).Render("")
	out := make([]string, 0, len(cells)*2-1)
	for i, c := range cells {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, c)
	}
	return out
}

func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
