package domain

import (
	"context"
	"time"
)

// ContactSubmission is one message sent through the public contact form.
// Append-only; submissions are never mutated or deleted.
type ContactSubmission struct {
	ID        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewsletterSubscription is one email on the newsletter list.
// Keyed by email: re-subscribing reactivates instead of duplicating.
type NewsletterSubscription struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
	IsActive     bool      `json:"isActive"`
}

// ContactRepository defines the interface for contact submission storage.
type ContactRepository interface {
	CreateSubmission(ctx context.Context, sub *ContactSubmission) error
	ListSubmissions(ctx context.Context) ([]*ContactSubmission, error)
}

// NewsletterRepository defines the interface for newsletter subscriptions.
// Subscribe upserts on email and reports whether the row was newly created.
type NewsletterRepository interface {
	Subscribe(ctx context.Context, email string) (sub *NewsletterSubscription, created bool, err error)
}

// ContactService defines the business logic for contact form handling.
type ContactService interface {
	SubmitContactForm(ctx context.Context, sub *ContactSubmission) (*ContactSubmission, error)
	ListSubmissions(ctx context.Context) ([]*ContactSubmission, error)
}

// NewsletterService defines the business logic for newsletter signups.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*NewsletterSubscription, error)
}
