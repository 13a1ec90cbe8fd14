package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	h "societyportal/internal/delivery/http/helpers"
	"societyportal/internal/delivery/http/middleware"
	"societyportal/internal/domain"
)

// EventRequest is the request body for POST /api/events and PUT /api/events/{id}.
type EventRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Location         string `json:"location"`
	Credits          string `json:"credits"`
	Month            string `json:"month"`
	Day              string `json:"day"`
	SpeakerName      string `json:"speakerName"`
	SpeakerTitle     string `json:"speakerTitle"`
	SpeakerSpecialty string `json:"speakerSpecialty"`
	SpeakerImage     string `json:"speakerImage"`
}

// Validate implements Validator. Title, description, date, time, location,
// and speakerName are required; the rest are optional.
func (e EventRequest) Validate() []h.FieldError {
	var errs []h.FieldError
	required := []struct {
		field, value string
	}{
		{"title", e.Title},
		{"description", e.Description},
		{"date", e.Date},
		{"time", e.Time},
		{"location", e.Location},
		{"speakerName", e.SpeakerName},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, h.FieldError{Field: f.field, Message: f.field + " is required"})
		}
	}
	return errs
}

func (e EventRequest) toDomain() *domain.Event {
	return &domain.Event{
		Title:            e.Title,
		Description:      e.Description,
		Date:             e.Date,
		Time:             e.Time,
		Location:         e.Location,
		Credits:          e.Credits,
		Month:            e.Month,
		Day:              e.Day,
		SpeakerName:      e.SpeakerName,
		SpeakerTitle:     e.SpeakerTitle,
		SpeakerSpecialty: e.SpeakerSpecialty,
		SpeakerImage:     e.SpeakerImage,
	}
}

// EventResponse is the response body for event mutations.
type EventResponse struct {
	Message string        `json:"message"`
	Event   *domain.Event `json:"event"`
}

// RegisterRequest is the request body for POST /api/events/register.
type RegisterRequest struct {
	EventName string `json:"eventName"`
}

// Validate implements Validator.
func (r RegisterRequest) Validate() []h.FieldError {
	if strings.TrimSpace(r.EventName) == "" {
		return []h.FieldError{{Field: "eventName", Message: "Event name is required"}}
	}
	return nil
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns all events in creation order.
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	h.WriteJSON(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create an event
// @Description The id and timestamps are assigned by the persistence layer; ids are never reused after deletion.
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event fields"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.ErrorResponse "field-level validation errors"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.toDomain())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}
	h.WriteJSON(w, http.StatusOK, EventResponse{Message: "Event created successfully", Event: event})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Full replacement of event fields; id and createdAt are preserved.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body EventRequest true "Event fields"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.ErrorResponse "field-level validation errors"
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := c.eventID(w, r)
	if !ok {
		return
	}
	var req EventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "Failed to update event")
		return
	}
	h.WriteJSON(w, http.StatusOK, EventResponse{Message: "Event updated successfully", Event: event})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes the event and returns it for confirmation.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} controllers.EventResponse
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := c.eventID(w, r)
	if !ok {
		return
	}
	event, err := c.Service.DeleteEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	h.WriteJSON(w, http.StatusOK, EventResponse{Message: "Event deleted successfully", Event: event})
}

// RegisterForEvent godoc
// @Summary Register the authenticated member for a named event
// @Description Append-only; registering twice for the same event creates two rows.
// @Tags events
// @Accept json
// @Produce json
// @Param registration body RegisterRequest true "Event name"
// @Success 200 {object} controllers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse "missing eventName"
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/register [post]
func (c *EventController) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := c.Service.RegisterForEvent(r.Context(), user.ID, strings.TrimSpace(req.EventName)); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "Failed to register for event")
		return
	}
	h.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Successfully registered for event"})
}

// ListRegistrations godoc
// @Summary List the authenticated member's event registrations
// @Tags events
// @Produce json
// @Success 200 {array} domain.EventRegistration
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/registrations [get]
func (c *EventController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	regs, err := c.Service.ListRegistrations(r.Context(), user.ID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "Failed to list registrations")
		return
	}
	h.WriteJSON(w, http.StatusOK, regs)
}

func (c *EventController) eventID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		h.WriteJSONError(w, http.StatusBadRequest, "invalid event id")
		return 0, false
	}
	return id, true
}
