package memory

import (
	"context"
	"sync"
	"time"

	"societyportal/internal/domain"
)

type newsletterRepository struct {
	mu            sync.Mutex
	subscriptions []*domain.NewsletterSubscription
}

// NewNewsletterRepository returns an in-memory NewsletterRepository.
func NewNewsletterRepository() domain.NewsletterRepository {
	return &newsletterRepository{}
}

// Subscribe upserts on email: an existing subscription is reactivated with a
// refreshed timestamp instead of creating a duplicate row.
func (r *newsletterRepository) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscription, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.subscriptions {
		if s.Email == email {
			s.IsActive = true
			s.SubscribedAt = time.Now()
			cp := *s
			return &cp, false, nil
		}
	}
	sub := &domain.NewsletterSubscription{
		ID:           len(r.subscriptions) + 1,
		Email:        email,
		SubscribedAt: time.Now(),
		IsActive:     true,
	}
	r.subscriptions = append(r.subscriptions, sub)
	cp := *sub
	return &cp, true, nil
}
