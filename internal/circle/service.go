package circle

import (
	"context"
	"errors"
	"time"
)

// Circle is a shared journaling group joined by invite code.
type Circle struct {
	Name      string
	Code      string
	CreatedAt time.Time
}

// Member is another journaler in the circle.
type Member struct {
	Name     string
	JoinedAt time.Time
	IsOwner  bool
}

// Join-flow errors surfaced to the UI as banners.
var (
	// ErrRateLimited maps the backend's HTTP 429 on repeated join attempts.
	ErrRateLimited = errors.New("too many join attempts, try again later")
	// ErrCodeNotFound means the code is well-formed but matches no circle.
	ErrCodeNotFound = errors.New("invite code not found")
	// ErrAlreadyMember means the account already belongs to this circle.
	ErrAlreadyMember = errors.New("already a member of this circle")
)

// Service is the circle backend. The UI only ever submits normalized,
// format-valid codes.
type Service interface {
	Join(ctx context.Context, code string) (Circle, error)
	Members(ctx context.Context) ([]Member, error)
	Leave(ctx context.Context) error
}
