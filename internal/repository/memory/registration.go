package memory

import (
	"context"
	"sync"
	"time"

	"societyportal/internal/domain"
)

type registrationRepository struct {
	mu            sync.Mutex
	registrations []*domain.EventRegistration
}

// NewRegistrationRepository returns an in-memory RegistrationRepository.
// Registrations are append-only; duplicates for the same event are allowed.
func NewRegistrationRepository() domain.RegistrationRepository {
	return &registrationRepository{}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.EventRegistration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg.ID = len(r.registrations) + 1
	if reg.RegisteredAt.IsZero() {
		reg.RegisteredAt = time.Now()
	}
	cp := *reg
	r.registrations = append(r.registrations, &cp)
	return nil
}

func (r *registrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.EventRegistration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	regs := []*domain.EventRegistration{}
	for _, reg := range r.registrations {
		if reg.UserID == userID {
			cp := *reg
			regs = append(regs, &cp)
		}
	}
	return regs, nil
}
