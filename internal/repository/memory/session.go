package memory

import (
	"context"
	"sync"
	"time"

	"societyportal/internal/domain"
)

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

// NewSessionRepository returns an in-memory SessionRepository.
// Expired sessions are treated as absent on read.
func NewSessionRepository() domain.SessionRepository {
	return &sessionRepository{sessions: make(map[string]*domain.Session)}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.Expired() {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for id, s := range r.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.sessions, id)
		}
	}
	return nil
}
