package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	h "societyportal/internal/delivery/http/helpers"
	"societyportal/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ContactRequest is the request body for POST /api/contact.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Validate implements Validator. All fields are required; email must be
// syntactically valid.
func (c ContactRequest) Validate() []h.FieldError {
	var errs []h.FieldError
	if strings.TrimSpace(c.FirstName) == "" {
		errs = append(errs, h.FieldError{Field: "firstName", Message: "firstName is required"})
	}
	if strings.TrimSpace(c.LastName) == "" {
		errs = append(errs, h.FieldError{Field: "lastName", Message: "lastName is required"})
	}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, h.FieldError{Field: "email", Message: "email is required"})
	} else if !emailRegexp.MatchString(strings.TrimSpace(c.Email)) {
		errs = append(errs, h.FieldError{Field: "email", Message: "invalid email format"})
	}
	if strings.TrimSpace(c.Subject) == "" {
		errs = append(errs, h.FieldError{Field: "subject", Message: "subject is required"})
	}
	if strings.TrimSpace(c.Message) == "" {
		errs = append(errs, h.FieldError{Field: "message", Message: "message is required"})
	}
	return errs
}

// ContactResponse is the response body for POST /api/contact.
type ContactResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// NewsletterRequest is the request body for POST /api/newsletter.
type NewsletterRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (n NewsletterRequest) Validate() []h.FieldError {
	var errs []h.FieldError
	if strings.TrimSpace(n.Email) == "" {
		errs = append(errs, h.FieldError{Field: "email", Message: "email is required"})
	} else if !emailRegexp.MatchString(strings.TrimSpace(n.Email)) {
		errs = append(errs, h.FieldError{Field: "email", Message: "invalid email format"})
	}
	return errs
}

type ContactController struct {
	Logger     *slog.Logger
	Contact    domain.ContactService
	Newsletter domain.NewsletterService
}

func NewContactController(logger *slog.Logger, contact domain.ContactService, newsletter domain.NewsletterService) *ContactController {
	return &ContactController{
		Logger:     logger,
		Contact:    contact,
		Newsletter: newsletter,
	}
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param submission body ContactRequest true "Contact form fields"
// @Success 200 {object} controllers.ContactResponse
// @Failure 400 {object} helpers.ErrorResponse "field-level validation errors"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/contact [post]
func (c *ContactController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sub := &domain.ContactSubmission{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   req.Message,
	}
	stored, err := c.Contact.SubmitContactForm(r.Context(), sub)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}
	h.WriteJSON(w, http.StatusOK, ContactResponse{Message: "Contact form submitted successfully", ID: stored.ID})
}

// ListContacts godoc
// @Summary List contact submissions
// @Description Internal listing of all contact form submissions. Requires a session.
// @Tags contact
// @Produce json
// @Success 200 {array} domain.ContactSubmission
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/contact [get]
func (c *ContactController) ListContacts(w http.ResponseWriter, r *http.Request) {
	subs, err := c.Contact.ListSubmissions(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "Failed to list contact submissions")
		return
	}
	h.WriteJSON(w, http.StatusOK, subs)
}

// SubscribeNewsletter godoc
// @Summary Subscribe to the newsletter
// @Description Upserts on email: re-subscribing an existing address reactivates it instead of creating a duplicate.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param subscription body NewsletterRequest true "Subscriber email"
// @Success 200 {object} controllers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse "field-level validation errors"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/newsletter [post]
func (c *ContactController) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req NewsletterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, err := c.Newsletter.Subscribe(r.Context(), strings.TrimSpace(strings.ToLower(req.Email))); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "Failed to subscribe to newsletter")
		return
	}
	h.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Successfully subscribed to newsletter"})
}
