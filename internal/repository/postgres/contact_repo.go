package postgres

import (
	"context"
	"database/sql"

	"societyportal/internal/domain"
)

type contactRepository struct {
	DB *sql.DB
}

// NewContactRepository returns a Postgres-backed ContactRepository.
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) CreateSubmission(ctx context.Context, sub *domain.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (first_name, last_name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query, sub.FirstName, sub.LastName, sub.Email, sub.Subject, sub.Message).
		Scan(&sub.ID, &sub.CreatedAt)
}

func (r *contactRepository) ListSubmissions(ctx context.Context) ([]*domain.ContactSubmission, error) {
	query := `
		SELECT id, first_name, last_name, email, subject, message, created_at
		FROM contact_submissions
		ORDER BY created_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []*domain.ContactSubmission{}
	for rows.Next() {
		sub := &domain.ContactSubmission{}
		if err := rows.Scan(&sub.ID, &sub.FirstName, &sub.LastName, &sub.Email, &sub.Subject, &sub.Message, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
