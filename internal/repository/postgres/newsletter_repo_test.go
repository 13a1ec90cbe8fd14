package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/stretchr/testify/require"
)

func TestNewsletterRepository_Subscribe(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	cols := []string{"id", "email", "subscribed_at", "is_active", "inserted"}

	tests := []struct {
		name        string
		mock        func(mock sqlmock.Sqlmock)
		wantCreated bool
		wantErr     bool
	}{
		{
			name: "new subscription",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO newsletter_subscriptions`).
					WithArgs("a@b.com").
					WillReturnRows(sqlmock.NewRows(cols).AddRow(1, "a@b.com", now, true, true))
			},
			wantCreated: true,
		},
		{
			name: "reactivation of existing email",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO newsletter_subscriptions`).
					WithArgs("a@b.com").
					WillReturnRows(sqlmock.NewRows(cols).AddRow(1, "a@b.com", now, true, false))
			},
			wantCreated: false,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO newsletter_subscriptions`).
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
			repo := NewNewsletterRepository(db)
			sub, created, err := repo.Subscribe(ctx, "a@b.com")
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.wantCreated, created)
				require.True(t, sub.IsActive)
				require.Equal(t, "a@b.com", sub.Email)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
