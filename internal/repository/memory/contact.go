package memory

import (
	"context"
	"sync"
	"time"

	"societyportal/internal/domain"
)

type contactRepository struct {
	mu          sync.Mutex
	submissions []*domain.ContactSubmission
}

// NewContactRepository returns an in-memory ContactRepository.
func NewContactRepository() domain.ContactRepository {
	return &contactRepository{}
}

func (r *contactRepository) CreateSubmission(ctx context.Context, sub *domain.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub.ID = len(r.submissions) + 1
	sub.CreatedAt = time.Now()
	cp := *sub
	r.submissions = append(r.submissions, &cp)
	return nil
}

func (r *contactRepository) ListSubmissions(ctx context.Context) ([]*domain.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs := make([]*domain.ContactSubmission, 0, len(r.submissions))
	for _, s := range r.submissions {
		cp := *s
		subs = append(subs, &cp)
	}
	return subs, nil
}
