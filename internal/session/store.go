package session

import (
	"context"
	"time"
)

// Session represents an authenticated user session.
// It intentionally stores only identity pointers, not auth state.
type Session struct {
	SessionID         string    // unique session identifier
	UserID            int64     // references users.id
	CreatedAt         time.Time // when the session was issued
	ExpiresAt         time.Time // idle expiry, renewed on use
	AbsoluteExpiresAt time.Time // hard ceiling, never extended
}

// Store defines how sessions are stored and retrieved.
// Implementations (memory, Redis) must remain stateless and opaque.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, sessionID string) error
}
