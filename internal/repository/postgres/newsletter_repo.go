package postgres

import (
	"context"
	"database/sql"

	"societyportal/internal/domain"
)

type newsletterRepository struct {
	DB *sql.DB
}

// NewNewsletterRepository returns a Postgres-backed NewsletterRepository.
func NewNewsletterRepository(db *sql.DB) domain.NewsletterRepository {
	return &newsletterRepository{DB: db}
}

// Subscribe upserts on the email unique constraint: re-subscribing an
// existing address reactivates it and refreshes subscribed_at.
func (r *newsletterRepository) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscription, bool, error) {
	query := `
		INSERT INTO newsletter_subscriptions (email, subscribed_at, is_active)
		VALUES ($1, NOW(), TRUE)
		ON CONFLICT (email) DO UPDATE
		SET is_active = TRUE, subscribed_at = NOW()
		RETURNING id, email, subscribed_at, is_active, (xmax = 0) AS inserted
	`
	sub := &domain.NewsletterSubscription{}
	var created bool
	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&sub.ID, &sub.Email, &sub.SubscribedAt, &sub.IsActive, &created)
	if err != nil {
		return nil, false, err
	}
	return sub, created, nil
}
