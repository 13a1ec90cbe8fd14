// Package memory provides the ephemeral storage backing: process-memory
// collections guarded by per-repository mutexes. Data does not survive
// restart. Selected at startup via config; interchangeable with the
// postgres backing behind the same domain interfaces.
package memory

import (
	"context"
	"sync"
	"time"

	"societyportal/internal/domain"
)

type userRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

// NewUserRepository returns an in-memory UserRepository.
func NewUserRepository() domain.UserRepository {
	return &userRepository{users: make(map[string]*domain.User)}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *user
	if existing, ok := r.users[user.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	stored.UpdatedAt = time.Now()
	r.users[stored.ID] = &stored
	cp := stored
	return &cp, nil
}
