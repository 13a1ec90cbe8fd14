package services

import (
	"context"
	"fmt"
	"time"

	"societyportal/internal/domain"
)

type eventService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	contextTimeout   time.Duration
}

// NewEventService creates an EventService over the given repositories.
func NewEventService(eventRepo domain.EventRepository, registrationRepo domain.RegistrationRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		contextTimeout:   timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.List(ctx)
}

func (s *eventService) UpdateEvent(ctx context.Context, id int, event *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event.ID = id
	return s.eventRepo.Update(ctx, event)
}

func (s *eventService) DeleteEvent(ctx context.Context, id int) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.Delete(ctx, id)
}

// RegisterForEvent appends one registration row. Fire-and-forget: no
// deduplication, a member may register for the same event more than once.
func (s *eventService) RegisterForEvent(ctx context.Context, userID, eventName string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if userID == "" || eventName == "" {
		return fmt.Errorf("userID and eventName are required")
	}
	reg := &domain.EventRegistration{UserID: userID, EventName: eventName}
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return fmt.Errorf("failed to register for event: %w", err)
	}
	return nil
}

func (s *eventService) ListRegistrations(ctx context.Context, userID string) ([]*domain.EventRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.registrationRepo.ListByUserID(ctx, userID)
}
