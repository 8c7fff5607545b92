package ports

import (
	"context"
	"time"

	"posdelivery/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for login sessions.
type SessionRepository interface {
	// Add persists a new session.
	Add(ctx context.Context, session *session.Session) error

	// Update persists changes to an existing session, such as a refreshed
	// last activity or a deactivation.
	Update(ctx context.Context, session *session.Session) error

	// GetByToken retrieves the session holding the given bearer token.
	// Returns an ObjectNotFoundError when no session has that token.
	GetByToken(ctx context.Context, token string) (*session.Session, error)

	// DeactivateByToken closes every session holding the given token.
	// It is a no-op when no such session exists, keeping logout idempotent.
	DeactivateByToken(ctx context.Context, token string) error

	// DeleteExpired removes sessions that are inactive or whose expiry lies
	// before the given time. Returns the number of sessions removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
