package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "societyportal/internal/delivery/http/helpers"
	"societyportal/internal/delivery/http/middleware"
	"societyportal/internal/domain"
)

// LoginRequest is the request body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []h.FieldError {
	var errs []h.FieldError
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, h.FieldError{Field: "email", Message: "email is required"})
	}
	if l.Password == "" {
		errs = append(errs, h.FieldError{Field: "password", Message: "password is required"})
	}
	return errs
}

// LoginResponse is the response body for POST /api/login.
type LoginResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

type AuthController struct {
	Logger       *slog.Logger
	Service      domain.AuthService
	SessionTTL   time.Duration
	SecureCookie bool
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, sessionTTL time.Duration, secureCookie bool) *AuthController {
	return &AuthController{
		Logger:       logger,
		Service:      svc,
		SessionTTL:   sessionTTL,
		SecureCookie: secureCookie,
	}
}

// Login godoc
// @Summary Log in with email and password
// @Description Validates credentials and issues an HTTP-only session cookie bound to the member account.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} controllers.LoginResponse
// @Failure 400 {object} helpers.ErrorResponse "missing fields"
// @Failure 401 {object} helpers.ErrorResponse "invalid credentials or user not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, session, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.WriteJSONError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			h.WriteJSONError(w, http.StatusUnauthorized, "User not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	c.setSessionCookie(w, session.ID)
	h.WriteJSON(w, http.StatusOK, LoginResponse{Message: "Login successful", User: user})
}

// Logout godoc
// @Summary Log out
// @Description Destroys the current session server-side and clears the session cookie, whether or not a session existed.
// @Tags auth
// @Produce json
// @Success 200 {object} controllers.MessageResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionIDFromRequest(r)
	if err := c.Service.Logout(r.Context(), sessionID); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, "Logout failed")
		return
	}
	c.clearSessionCookie(w)
	h.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Logout successful"})
}

// GetAuthUser godoc
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} helpers.ErrorResponse "error message: Unauthorized"
// @Router /api/auth/user [get]
func (c *AuthController) GetAuthUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	h.WriteJSON(w, http.StatusOK, user)
}

func (c *AuthController) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(c.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   c.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *AuthController) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
