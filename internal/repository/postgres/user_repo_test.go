package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"societyportal/internal/domain"

	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "email", "first_name", "last_name", "profile_image_url", "created_at", "updated_at"}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		id       string
		mock     func(mock sqlmock.Sqlmock)
		wantUser *domain.User
		wantErr  bool
	}{
		{
			name: "success",
			id:   "1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users`).
					WithArgs("1").
					WillReturnRows(sqlmock.NewRows(userColumns).
						AddRow("1", "admin@cssh.us", "Admin", "User", "", now, now))
			},
			wantUser: &domain.User{ID: "1", Email: "admin@cssh.us", FirstName: "Admin", LastName: "User", CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "absent is not an error",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantUser: nil,
		},
		{
			name: "db error",
			id:   "1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			user, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.wantUser, user)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		user    *domain.User
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			user: &domain.User{ID: "1", Email: "admin@cssh.us", FirstName: "Admin", LastName: "User"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("1", "admin@cssh.us", "Admin", "User", "").
					WillReturnRows(sqlmock.NewRows(userColumns).
						AddRow("1", "admin@cssh.us", "Admin", "User", "", now, now))
			},
		},
		{
			name: "unique violation returns ErrDuplicateEmail",
			user: &domain.User{ID: "2", Email: "admin@cssh.us"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicateEmail,
		},
		{
			name: "db error",
			user: &domain.User{ID: "1"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			stored, err := repo.Upsert(ctx, tt.user)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.user.ID, stored.ID)
				require.Equal(t, now, stored.UpdatedAt)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
