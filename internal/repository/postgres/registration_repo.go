package postgres

import (
	"context"
	"database/sql"

	"societyportal/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

// NewRegistrationRepository returns a Postgres-backed RegistrationRepository.
// Rows are append-only; no uniqueness is enforced on (user, event).
func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.EventRegistration) error {
	query := `
		INSERT INTO event_registrations (user_id, event_name, registered_at)
		VALUES ($1, $2, NOW())
		RETURNING id, registered_at
	`
	return r.DB.QueryRowContext(ctx, query, reg.UserID, reg.EventName).
		Scan(&reg.ID, &reg.RegisteredAt)
}

func (r *registrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.EventRegistration, error) {
	query := `
		SELECT id, user_id, event_name, registered_at
		FROM event_registrations
		WHERE user_id = $1
		ORDER BY registered_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := []*domain.EventRegistration{}
	for rows.Next() {
		reg := &domain.EventRegistration{}
		if err := rows.Scan(&reg.ID, &reg.UserID, &reg.EventName, &reg.RegisteredAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
