package feed

import (
	"strings"
	"testing"
	"time"

	"glim/internal/journal/data"
)

var renderNow = time.Date(2026, 2, 6, 12, 0, 0, 0, time.Local)

func TestRenderCard_MixedContent(t *testing.T) {
	e := data.Entry{
		Title:        "Morning walk",
		OriginalText: "Fog over the lake.",
		CreatedAt:    renderNow.Add(-5 * time.Minute),
	}

	card := renderCard(e, 60, renderNow, "Jan 2, 2006", 2, false)
	if !strings.Contains(card, "Morning walk") {
		t.Error("expected title in card")
	}
	if !strings.Contains(card, "Fog over the lake.") {
		t.Error("expected body in card")
	}
	if !strings.Contains(card, "5 minutes ago") {
		t.Error("expected relative time in header")
	}
}

func TestRenderCard_ImageOnlySkipsTextBlock(t *testing.T) {
	e := data.Entry{
		Title:        "   ",
		OriginalText: " \n ",
		Images:       []string{"a.png", "b.png"},
		CreatedAt:    renderNow.Add(-time.Hour),
	}

	card := renderCard(e, 60, renderNow, "Jan 2, 2006", 2, false)
	if !strings.Contains(card, "a.png") {
		t.Error("expected image cells in card")
	}
	if !strings.Contains(card, "1 hour ago") {
		t.Error("expected header on image-only card")
	}
}

func TestRenderCard_OverflowBadge(t *testing.T) {
	images := make([]string, 9)
	for i := range images {
		images[i] = "img.png"
	}
	e := data.Entry{Images: images, CreatedAt: renderNow}

	card := renderCard(e, 60, renderNow, "Jan 2, 2006", 2, false)
	if !strings.Contains(card, "+6") {
		t.Error(`expected "+6" badge for 9 images with cap 3`)
	}
}

func TestRenderCard_AudioAffordance(t *testing.T) {
	e := data.Entry{
		OriginalText: "spoken thoughts",
		AudioPath:    "audio/n.wav",
		AudioSeconds: 75,
		CreatedAt:    renderNow,
	}

	card := renderCard(e, 60, renderNow, "Jan 2, 2006", 2, false)
	if !strings.Contains(card, "1:15") {
		t.Error("expected formatted audio duration")
	}
}

func TestRenderCard_AbsoluteDateFallback(t *testing.T) {
	e := data.Entry{
		OriginalText: "old entry",
		CreatedAt:    renderNow.Add(-10 * 24 * time.Hour),
	}

	card := renderCard(e, 60, renderNow, "Jan 2, 2006", 2, false)
	if !strings.Contains(card, "Jan 27, 2026") {
		t.Error("expected absolute date for entries older than a week")
	}
}

func TestPreviewText_Truncates(t *testing.T) {
	long := strings.Repeat("word ", 200)
	got := previewText(long, 20)
	if len([]rune(got)) > 20*previewLines {
		t.Errorf("preview exceeds budget: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Error("truncated preview should end with ellipsis")
	}
}

func TestPreviewText_CJKBudgetHalved(t *testing.T) {
	long := strings.Repeat("记", 500)
	got := previewText(long, 20)
	if len([]rune(got)) > 20*previewLines/2 {
		t.Errorf("CJK preview should use half the budget, got %d runes", len([]rune(got)))
	}
}

func TestDayHeading(t *testing.T) {
	if got := dayHeading(renderNow, renderNow.Add(-time.Hour)); got != "Today" {
		t.Errorf("expected Today, got %q", got)
	}
	if got := dayHeading(renderNow, renderNow.Add(-24*time.Hour)); got != "Yesterday" {
		t.Errorf("expected Yesterday, got %q", got)
	}
	older := time.Date(2026, 1, 30, 9, 0, 0, 0, time.Local)
	if got := dayHeading(renderNow, older); got != "Friday, Jan 30" {
		t.Errorf("expected full date, got %q", got)
	}
}
