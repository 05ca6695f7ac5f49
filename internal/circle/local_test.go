package circle

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestLocalService(t *testing.T) *LocalService {
	t.Helper()
	svc := NewLocalService(t.TempDir())
	base := time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)
	step := 0
	svc.now = func() time.Time {
		// Spread calls out so the throttle window stays quiet
		step++
		return base.Add(time.Duration(step) * 30 * time.Second)
	}
	return svc
}

func TestLocalService_JoinAndMembers(t *testing.T) {
	svc := newTestLocalService(t)
	ctx := context.Background()

	joined, err := svc.Join(ctx, "ABC123")
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if joined.Name != "Circle ABC-123" {
		t.Errorf("unexpected circle name %q", joined.Name)
	}

	members, err := svc.Members(ctx)
	if err != nil {
		t.Fatalf("members failed: %v", err)
	}
	if len(members) != 1 {
		t.Errorf("expected 1 member, got %d", len(members))
	}

	if current := svc.Current(); current == nil || current.Code != "ABC123" {
		t.Errorf("expected current circle ABC123, got %v", current)
	}
}

func TestLocalService_JoinErrors(t *testing.T) {
	svc := newTestLocalService(t)
	ctx := context.Background()

	if _, err := svc.Join(ctx, "abc123"); !errors.Is(err, ErrCodeNotFound) {
		t.Errorf("lowercase code should not be found, got %v", err)
	}

	if _, err := svc.Join(ctx, "ABC123"); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if _, err := svc.Join(ctx, "ABC123"); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("expected ErrAlreadyMember, got %v", err)
	}
}

func TestLocalService_RateLimit(t *testing.T) {
	svc := NewLocalService(t.TempDir())
	fixed := time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		svc.Join(ctx, "badcod")
	}
	if _, err := svc.Join(ctx, "ABC123"); !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited after burst, got %v", err)
	}

	// Outside the window the throttle resets
	svc.now = func() time.Time { return fixed.Add(2 * time.Minute) }
	if _, err := svc.Join(ctx, "ABC123"); err != nil {
		t.Errorf("expected join to succeed after window, got %v", err)
	}
}

func TestLocalService_Leave(t *testing.T) {
	svc := newTestLocalService(t)
	ctx := context.Background()

	if _, err := svc.Join(ctx, "XYZ789"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Leave(ctx); err != nil {
		t.Fatalf("leave failed: %v", err)
	}
	if svc.Current() != nil {
		t.Error("expected no circle after leave")
	}

	// Leaving when not a member is a no-op
	if err := svc.Leave(ctx); err != nil {
		t.Errorf("second leave should be a no-op, got %v", err)
	}
}
