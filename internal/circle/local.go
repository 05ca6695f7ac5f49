package circle

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LocalService is the offline stand-in for the circle backend: membership
// lives in a JSON file next to the journal. It enforces the same join-flow
// error taxonomy the real backend reports, including a local throttle that
// mirrors the backend's HTTP 429.
type LocalService struct {
	path string

	attempts    []time.Time
	maxAttempts int
	window      time.Duration

	// now is injectable for tests
	now func() time.Time
}

type membershipFile struct {
	Circle  *Circle  `json:"circle,omitempty"`
	Members []Member `json:"members,omitempty"`
}

// NewLocalService creates a LocalService storing membership under dir.
func NewLocalService(dir string) *LocalService {
	return &LocalService{
		path:        filepath.Join(dir, "circle.json"),
		maxAttempts: 3,
		window:      time.Minute,
		now:         time.Now,
	}
}

// Join joins the circle for a normalized invite code. Invalid formats are
// rejected as not found; repeated attempts inside the throttle window are
// rate limited.
func (s *LocalService) Join(ctx context.Context, code string) (Circle, error) {
	if err := ctx.Err(); err != nil {
		return Circle{}, err
	}

	if s.throttled() {
		return Circle{}, ErrRateLimited
	}
	s.attempts = append(s.attempts, s.now().UTC())

	if !ValidateInviteCodeFormat(code) {
		return Circle{}, ErrCodeNotFound
	}

	state, err := s.load()
	if err != nil {
		return Circle{}, err
	}
	if state.Circle != nil {
		if state.Circle.Code == code {
			return Circle{}, ErrAlreadyMember
		}
		return Circle{}, fmt.Errorf("leave %q before joining another circle", state.Circle.Name)
	}

	joined := Circle{
		Name:      "Circle " + FormatInviteCode(code),
		Code:      code,
		CreatedAt: s.now().UTC(),
	}
	state.Circle = &joined
	state.Members = []Member{{Name: "you", JoinedAt: joined.CreatedAt, IsOwner: false}}

	if err := s.save(state); err != nil {
		return Circle{}, err
	}
	return joined, nil
}

func (s *LocalService) Members(ctx context.Context) ([]Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return state.Members, nil
}

func (s *LocalService) Leave(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("leave circle: %w", err)
	}
	return nil
}

// Current returns the joined circle, or nil.
func (s *LocalService) Current() *Circle {
	state, err := s.load()
	if err != nil {
		return nil
	}
	return state.Circle
}

func (s *LocalService) throttled() bool {
	cutoff := s.now().UTC().Add(-s.window)
	var recent []time.Time
	for _, t := range s.attempts {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	s.attempts = recent
	return len(recent) >= s.maxAttempts
}

func (s *LocalService) load() (membershipFile, error) {
	var state membershipFile
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("read circle file: %w", err)
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return membershipFile{}, fmt.Errorf("parse circle file: %w", err)
	}
	return state, nil
}

func (s *LocalService) save(state membershipFile) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write circle file: %w", err)
	}
	return nil
}
