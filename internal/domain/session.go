package domain

import (
	"context"
	"time"
)

// Session binds an opaque cookie token to an authenticated user for a
// bounded time window. Sessions are not renewed on use.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewSession returns a Session for the given user expiring after ttl.
func NewSession(id, userID string, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// SessionRepository defines the interface for session storage.
// GetByID treats expired sessions as absent and returns ErrNotFound.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) error
}
