package domain

import (
	"context"
	"time"
)

// Event represents a society lectureship or meeting shown on the events page.
// swagger:model Event
type Event struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Location         string    `json:"location"`
	Credits          string    `json:"credits,omitempty"`
	Month            string    `json:"month,omitempty"`
	Day              string    `json:"day,omitempty"`
	SpeakerName      string    `json:"speakerName"`
	SpeakerTitle     string    `json:"speakerTitle,omitempty"`
	SpeakerSpecialty string    `json:"speakerSpecialty,omitempty"`
	SpeakerImage     string    `json:"speakerImage,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// EventRegistration records one registration action for a named event.
// Append-only; a user may register for the same event more than once.
type EventRegistration struct {
	ID           int       `json:"id"`
	UserID       string    `json:"userId"`
	EventName    string    `json:"eventName"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// EventRepository defines the interface for event storage.
// IDs are assigned by the repository on create and are never reused after
// deletion. List returns events in creation order.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) (*Event, error)
	Delete(ctx context.Context, id int) (*Event, error)
}

// RegistrationRepository defines the interface for event registration storage.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *EventRegistration) error
	ListByUserID(ctx context.Context, userID string) ([]*EventRegistration, error)
}

// EventService defines the business logic for the event catalog and
// member registrations.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	UpdateEvent(ctx context.Context, id int, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id int) (*Event, error)
	RegisterForEvent(ctx context.Context, userID, eventName string) error
	ListRegistrations(ctx context.Context, userID string) ([]*EventRegistration, error)
}
