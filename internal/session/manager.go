package session

import (
	"context"
	"errors"
	"time"
)

// ErrUnauthenticated is returned for any token that does not map to a
// live session: unknown, expired, or empty.
var ErrUnauthenticated = errors.New("unauthenticated")

// Manager owns the session lifecycle: Anonymous -> Authenticated on
// Issue, back to Anonymous on Revoke or expiry. It knows tokens and
// user ids only; cookies are the API layer's concern.
type Manager struct {
	store       Store
	idleTTL     time.Duration
	absoluteTTL time.Duration
}

func NewManager(store Store, idleTTL, absoluteTTL time.Duration) *Manager {
	return &Manager{
		store:       store,
		idleTTL:     idleTTL,
		absoluteTTL: absoluteTTL,
	}
}

// Issue creates a session for an authenticated user.
func (m *Manager) Issue(ctx context.Context, userID int64) (Session, error) {
	sessionID, err := GenerateID()
	if err != nil {
		return Session{}, err
	}

	now := time.Now()
	s := Session{
		SessionID:         sessionID,
		UserID:            userID,
		CreatedAt:         now,
		ExpiresAt:         m.capExpiry(now.Add(m.idleTTL), now.Add(m.absoluteTTL)),
		AbsoluteExpiresAt: now.Add(m.absoluteTTL),
	}

	if err := m.store.Create(ctx, s); err != nil {
		return Session{}, err
	}

	return s, nil
}

// Validate resolves a token to a user id and slides the idle window
// forward, capped at the session's absolute expiry.
func (m *Manager) Validate(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrUnauthenticated
	}

	s, err := m.store.Get(ctx, token)
	if err != nil {
		return 0, err
	}
	if s == nil {
		return 0, ErrUnauthenticated
	}

	now := time.Now()
	if now.After(s.ExpiresAt) || now.After(s.AbsoluteExpiresAt) {
		_ = m.store.Delete(ctx, token)
		return 0, ErrUnauthenticated
	}

	renewed := *s
	renewed.ExpiresAt = m.capExpiry(now.Add(m.idleTTL), s.AbsoluteExpiresAt)
	if err := m.store.Update(ctx, renewed); err != nil {
		// Renewal is best-effort; the session is still valid.
		return s.UserID, nil
	}

	return s.UserID, nil
}

// Revoke ends a session. Revoking an unknown token is not an error.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

func (m *Manager) capExpiry(idle, absolute time.Time) time.Time {
	if idle.After(absolute) {
		return absolute
	}
	return idle
}
