package memory

import (
	"context"
	"sync"
	"time"

	"societyportal/internal/domain"
)

type eventRepository struct {
	mu     sync.Mutex
	events []*domain.Event
	nextID int
}

// NewEventRepository returns an in-memory EventRepository seeded with the
// society's upcoming lectureships.
func NewEventRepository() domain.EventRepository {
	return NewEventRepositoryFrom(seedEvents())
}

// NewEventRepositoryFrom returns an in-memory EventRepository holding the
// given events. IDs come from a monotonic counter initialized past the
// highest seed id, so an id freed by deletion is never handed out again.
func NewEventRepositoryFrom(seed []*domain.Event) domain.EventRepository {
	r := &eventRepository{nextID: 1}
	for _, e := range seed {
		cp := *e
		r.events = append(r.events, &cp)
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
	}
	return r
}

func seedEvents() []*domain.Event {
	now := time.Now()
	return []*domain.Event{
		{
			ID:               1,
			Title:            "Schenck Lectureship",
			Description:      "Multidisciplinary Management of the Mangled Hand",
			Date:             "October 16, 2024",
			Time:             "6:30 PM",
			Location:         "Capital Grille - 633 N. St Clair St, Chicago IL 60611, Valet Available",
			Credits:          "2.0 CME Credits",
			Month:            "OCT",
			Day:              "16",
			SpeakerName:      "Jeffrey B. Friedrich, MD, MC, FACS",
			SpeakerTitle:     "Professor of Surgery",
			SpeakerSpecialty: "Hand and Microvascular Surgery",
			SpeakerImage:     "/assets/Home/api-bioimage-jeffrey-friedrich.jpg",
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               2,
			Title:            "International Guest Virtual Lecture",
			Description:      "Soft Tissue coverage in Major Upper Limb Trauma",
			Date:             "December 11, 2024",
			Time:             "7:30 PM",
			Location:         "University of Chicago Medicine",
			Credits:          "1.5 CME Credits",
			Month:            "DEC",
			Day:              "11",
			SpeakerName:      "Dr. S Raja Sabapathy",
			SpeakerTitle:     "Chairman, Plastic Surgery",
			SpeakerSpecialty: "Hand and Reconstructive Microsurgery",
			SpeakerImage:     "/assets/Home/Raja Sabapathy - International 2024.jpg",
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               3,
			Title:            "Blair Lectureship",
			Description:      "Wrist Arthroplasty: Why Can't We Catch Up?",
			Date:             "February 19, 2025",
			Time:             "6:30 PM",
			Location:         "Gibson's Steakhouse - 5464 N River Rd, Rosemont, IL",
			Credits:          "8.0 CME Credits",
			Month:            "FEB",
			Day:              "19",
			SpeakerName:      "Harry Hoyen, MD",
			SpeakerTitle:     "Professor of Orthopaedic Surgery",
			SpeakerSpecialty: "Upper Extremity Surgery",
			SpeakerImage:     "/assets/Home/Harry_Hoyen_-_Blair.jpg",
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{
			ID:               4,
			Title:            "Mason-Stromberg Lectureship",
			Description:      "Wide Awake Hand Surgery: Why Are We Wasting Time In the Operating Room?",
			Date:             "April 10, 2025",
			Time:             "6:30 PM",
			Location:         "Morton's Steakhouse - 65 E. Wacker Pl, Chicago IL",
			Credits:          "8.0 CME Credits",
			Month:            "APR",
			Day:              "10",
			SpeakerName:      "Asif Ilyas, MD",
			SpeakerTitle:     "Professor of Orthopaedic Surgery",
			SpeakerSpecialty: "Hand and Wrist Surgery",
			SpeakerImage:     "/assets/Home/Asif Ilyas.jpg",
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	event.ID = r.nextID
	r.nextID++
	event.CreatedAt = now
	event.UpdatedAt = now
	cp := *event
	r.events = append(r.events, &cp)
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		cp := *e
		events = append(events, &cp)
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID == event.ID {
			updated := *event
			updated.CreatedAt = e.CreatedAt
			updated.UpdatedAt = time.Now()
			r.events[i] = &updated
			cp := updated
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *eventRepository) Delete(ctx context.Context, id int) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID == id {
			removed := *e
			r.events = append(r.events[:i], r.events[i+1:]...)
			return &removed, nil
		}
	}
	return nil, domain.ErrNotFound
}
