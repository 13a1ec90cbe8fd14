package postgres

import (
	"context"
	"database/sql"
	"errors"

	"societyportal/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns a Postgres-backed EventRepository.
// IDs come from the table's sequence and are never reused after deletion.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

const eventColumns = `id, title, description, date, time, location, credits, month, day,
		speaker_name, speaker_title, speaker_specialty, speaker_image, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location,
		&e.Credits, &e.Month, &e.Day, &e.SpeakerName, &e.SpeakerTitle,
		&e.SpeakerSpecialty, &e.SpeakerImage, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (title, description, date, time, location, credits, month, day,
			speaker_name, speaker_title, speaker_specialty, speaker_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRowContext(ctx, query,
		event.Title, event.Description, event.Date, event.Time, event.Location,
		event.Credits, event.Month, event.Day, event.SpeakerName, event.SpeakerTitle,
		event.SpeakerSpecialty, event.SpeakerImage).
		Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	event, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	query := `
		UPDATE events
		SET title = $2, description = $3, date = $4, time = $5, location = $6,
		    credits = $7, month = $8, day = $9, speaker_name = $10, speaker_title = $11,
		    speaker_specialty = $12, speaker_image = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + eventColumns
	updated, err := scanEvent(r.DB.QueryRowContext(ctx, query, event.ID,
		event.Title, event.Description, event.Date, event.Time, event.Location,
		event.Credits, event.Month, event.Day, event.SpeakerName, event.SpeakerTitle,
		event.SpeakerSpecialty, event.SpeakerImage))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *eventRepository) Delete(ctx context.Context, id int) (*domain.Event, error) {
	query := `DELETE FROM events WHERE id = $1 RETURNING ` + eventColumns
	removed, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return removed, nil
}
