package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"societyportal/internal/domain"

	"github.com/stretchr/testify/require"
)

var eventCols = []string{"id", "title", "description", "date", "time", "location", "credits", "month", "day",
	"speaker_name", "speaker_title", "speaker_specialty", "speaker_image", "created_at", "updated_at"}

func eventRow(id int, title string, at time.Time) []driver.Value {
	return []driver.Value{id, title, "desc", "October 16, 2025", "6:30 PM", "Chicago",
		"2.0 CME Credits", "OCT", "16", "Dr. Smith", "", "", "", at, at}
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO events`).
		WithArgs("Lecture", "desc", "October 16, 2025", "6:30 PM", "Chicago",
			"2.0 CME Credits", "OCT", "16", "Dr. Smith", "", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(5, now, now))

	repo := NewEventRepository(db)
	event := &domain.Event{
		Title: "Lecture", Description: "desc", Date: "October 16, 2025", Time: "6:30 PM",
		Location: "Chicago", Credits: "2.0 CME Credits", Month: "OCT", Day: "16", SpeakerName: "Dr. Smith",
	}
	require.NoError(t, repo.Create(ctx, event))
	require.Equal(t, 5, event.ID)
	require.Equal(t, now, event.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(eventCols).
		AddRow(eventRow(1, "First", now)...).
		AddRow(eventRow(2, "Second", now.Add(time.Minute))...)
	mock.ExpectQuery(`SELECT (.+) FROM events ORDER BY created_at, id`).WillReturnRows(rows)

	repo := NewEventRepository(db)
	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "First", events[0].Title)
	require.Equal(t, 2, events[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM events`).WillReturnRows(sqlmock.NewRows(eventCols))

	repo := NewEventRepository(db)
	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, events, "empty list must encode as [] not null")
	require.Empty(t, events)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE events`).
					WillReturnRows(sqlmock.NewRows(eventCols).AddRow(eventRow(7, "Renamed", now)...))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE events`).WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			updated, err := repo.Update(ctx, &domain.Event{ID: 7, Title: "Renamed"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, 7, updated.ID)
				require.Equal(t, "Renamed", updated.Title)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "returns removed event for confirmation",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`DELETE FROM events`).
					WithArgs(3).
					WillReturnRows(sqlmock.NewRows(eventCols).AddRow(eventRow(3, "Removed", now)...))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`DELETE FROM events`).
					WithArgs(3).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			removed, err := repo.Delete(ctx, 3)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, 3, removed.ID)
				require.Equal(t, "Removed", removed.Title)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
