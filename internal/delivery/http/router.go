// Package http wires controllers, middleware, and routes into the server mux.
package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"societyportal/internal/delivery/http/controllers"
	h "societyportal/internal/delivery/http/helpers"
	"societyportal/internal/delivery/http/middleware"
	"societyportal/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Protected routes are wrapped with the session guard; everything else is
// public.
func NewRouter(
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	contactController *controllers.ContactController,
	authService domain.AuthService,
) *http.ServeMux {
	mux := http.NewServeMux()
	guard := middleware.RequireSession(authService)

	// Auth
	mux.HandleFunc("POST /api/login", authController.Login)
	mux.HandleFunc("POST /api/logout", authController.Logout)
	mux.HandleFunc("GET /api/auth/user", guard(authController.GetAuthUser))

	// Contact and newsletter
	mux.HandleFunc("POST /api/contact", contactController.SubmitContact)
	mux.HandleFunc("GET /api/contact", guard(contactController.ListContacts))
	mux.HandleFunc("POST /api/newsletter", contactController.SubscribeNewsletter)

	// Events
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	mux.HandleFunc("POST /api/events", eventController.CreateEvent)
	mux.HandleFunc("PUT /api/events/{id}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", eventController.DeleteEvent)
	mux.HandleFunc("POST /api/events/register", guard(eventController.RegisterForEvent))
	mux.HandleFunc("GET /api/events/registrations", guard(eventController.ListRegistrations))

	// Health
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		h.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
