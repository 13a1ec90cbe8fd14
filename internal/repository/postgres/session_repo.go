package postgres

import (
	"context"
	"database/sql"
	"errors"

	"societyportal/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

// NewSessionRepository returns a Postgres-backed SessionRepository.
// Rows past their expiry are treated as absent on read.
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (sid, user_id, expire)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.UserID, s.ExpiresAt)
	return err
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT sid, user_id, expire
		FROM sessions
		WHERE sid = $1 AND expire > NOW()
	`
	s := &domain.Session{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.UserID, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE sid = $1`, id)
	return err
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE expire <= NOW()`)
	return err
}
