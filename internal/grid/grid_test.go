package grid

import (
	"reflect"
	"testing"
)

func TestCompute_CountsAlwaysBalance(t *testing.T) {
	for imageCount := 0; imageCount <= 20; imageCount++ {
		for _, p := range []Policy{CardPolicy, FeedPolicy} {
			l := Compute(imageCount, 60, 2, p)
			if l.DisplayedCount+l.OverflowCount != imageCount {
				t.Errorf("imageCount=%d cap=%d: displayed(%d)+overflow(%d) != total",
					imageCount, p.DisplayCap, l.DisplayedCount, l.OverflowCount)
			}
			if l.DisplayedCount > p.DisplayCap {
				t.Errorf("imageCount=%d: displayed %d exceeds cap %d",
					imageCount, l.DisplayedCount, p.DisplayCap)
			}
		}
	}
}

func TestCompute_Tiers(t *testing.T) {
	tests := []struct {
		name        string
		imageCount  int
		wantColumns int
		wantRows    int
	}{
		{"single image", 1, 1, 1},
		{"two images", 2, 2, 1},
		{"three images one row", 3, 3, 1},
		{"four images capped at three", 4, 3, 1},
		{"nine images capped at three", 9, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Compute(tt.imageCount, 60, 2, CardPolicy)
			if l.Columns != tt.wantColumns {
				t.Errorf("columns = %d, want %d", l.Columns, tt.wantColumns)
			}
			if l.Rows != tt.wantRows {
				t.Errorf("rows = %d, want %d", l.Rows, tt.wantRows)
			}
		})
	}
}

func TestCompute_FeedPolicyMultiRow(t *testing.T) {
	l := Compute(7, 60, 2, FeedPolicy)
	if l.DisplayedCount != 7 || l.OverflowCount != 0 {
		t.Errorf("feed should display all 7, got %+v", l)
	}
	if l.Columns != 3 || l.Rows != 3 {
		t.Errorf("expected 3x3 grid, got %dx%d", l.Columns, l.Rows)
	}
	if l.CellHeight != FeedPolicy.RowHeight {
		t.Errorf("feed rows use the fixed height, got %d", l.CellHeight)
	}

	l = Compute(12, 60, 2, FeedPolicy)
	if l.DisplayedCount != 9 || l.OverflowCount != 3 {
		t.Errorf("feed caps at 9, got %+v", l)
	}
}

func TestCompute_CellWidth(t *testing.T) {
	l := Compute(2, 42, 2, CardPolicy)
	if l.CellWidth != 20 {
		t.Errorf("expected (42-2)/2 = 20, got %d", l.CellWidth)
	}

	l = Compute(1, 42, 2, CardPolicy)
	if l.CellWidth != 42 {
		t.Errorf("single cell should span full width, got %d", l.CellWidth)
	}
}

func TestRowWidths_SpanExactly(t *testing.T) {
	for width := 10; width <= 80; width++ {
		for imageCount := 1; imageCount <= 4; imageCount++ {
			l := Compute(imageCount, width, 2, CardPolicy)
			widths := l.RowWidths(width, 2)
			sum := (len(widths) - 1) * 2
			for _, w := range widths {
				sum += w
			}
			if sum != width {
				t.Errorf("width=%d images=%d: row spans %d", width, imageCount, sum)
			}
		}
	}
}

func TestBadge(t *testing.T) {
	l := Compute(9, 60, 2, CardPolicy)
	if l.Badge() != "+6" {
		t.Errorf(`expected "+6", got %q`, l.Badge())
	}

	l = Compute(3, 60, 2, CardPolicy)
	if l.Badge() != "" {
		t.Errorf("no badge expected at the cap, got %q", l.Badge())
	}
}

func TestCompute_ZeroImages(t *testing.T) {
	if l := Compute(0, 60, 2, CardPolicy); l != (Layout{}) {
		t.Errorf("expected zero layout, got %+v", l)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	a := Compute(5, 47, 3, CardPolicy)
	b := Compute(5, 47, 3, CardPolicy)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs gave %+v and %+v", a, b)
	}
}
