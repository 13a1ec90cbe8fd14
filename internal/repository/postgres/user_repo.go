// Package postgres provides the durable storage backing over a relational
// database via database/sql and lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"societyportal/internal/domain"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

type userRepository struct {
	DB *sql.DB
}

// NewUserRepository returns a Postgres-backed UserRepository.
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, COALESCE(email, ''), COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(profile_image_url, ''), created_at, updated_at
		FROM users
		WHERE id = $1
	`
	u := &domain.User{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, email, first_name, last_name, profile_image_url, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email,
		    first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    profile_image_url = EXCLUDED.profile_image_url,
		    updated_at = NOW()
		RETURNING id, COALESCE(email, ''), COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(profile_image_url, ''), created_at, updated_at
	`
	stored := &domain.User{}
	err := r.DB.QueryRowContext(ctx, query, user.ID, user.Email, user.FirstName, user.LastName, user.ProfileImageURL).
		Scan(&stored.ID, &stored.Email, &stored.FirstName, &stored.LastName, &stored.ProfileImageURL, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return stored, nil
}
