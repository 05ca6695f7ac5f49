package timefmt

import (
	"testing"
	"time"
)

var now = time.Date(2026, 2, 6, 12, 0, 0, 0, time.Local)

func absStub(t time.Time) string {
	return t.Format("2006-01-02")
}

func TestRelative_Buckets(t *testing.T) {
	tests := []struct {
		name   string
		target time.Time
		want   string
	}{
		{"thirty seconds", now.Add(-30 * time.Second), "just now"},
		{"one minute", now.Add(-1 * time.Minute), "1 minute ago"},
		{"five minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"fifty-nine minutes", now.Add(-59 * time.Minute), "59 minutes ago"},
		{"one hour", now.Add(-60 * time.Minute), "1 hour ago"},
		{"three hours", now.Add(-3 * time.Hour), "3 hours ago"},
		{"twenty-three hours", now.Add(-23 * time.Hour), "23 hours ago"},
		{"one day", now.Add(-24 * time.Hour), "1 day ago"},
		{"two days", now.Add(-48 * time.Hour), "2 days ago"},
		{"six days", now.Add(-6 * 24 * time.Hour), "6 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Relative(now, tt.target, absStub)
			if got != tt.want {
				t.Errorf("Relative() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelative_AbsoluteFallback(t *testing.T) {
	target := now.Add(-10 * 24 * time.Hour)
	got := Relative(now, target, absStub)
	if got != "2026-01-27" {
		t.Errorf("expected absolute fallback 2026-01-27, got %q", got)
	}

	// Exactly one week is already absolute
	target = now.Add(-7 * 24 * time.Hour)
	if got := Relative(now, target, absStub); got != "2026-01-30" {
		t.Errorf("expected absolute fallback at 7 days, got %q", got)
	}
}

func TestRelative_FutureClampsToJustNow(t *testing.T) {
	target := now.Add(5 * time.Minute)
	if got := Relative(now, target, absStub); got != "just now" {
		t.Errorf("expected future timestamp to clamp, got %q", got)
	}
}

func TestRelative_NilAbsoluteUsesDefaultFormat(t *testing.T) {
	target := now.Add(-30 * 24 * time.Hour)
	got := Relative(now, target, nil)
	if got != "Jan 7, 2026" {
		t.Errorf("expected default format, got %q", got)
	}
}
