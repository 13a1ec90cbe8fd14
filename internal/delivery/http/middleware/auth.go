package middleware

import (
	"context"
	"net/http"

	h "societyportal/internal/delivery/http/helpers"
	"societyportal/internal/domain"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
// No bearer-token or API-key path exists; the cookie is the only way in.
const SessionCookieName = "society_session"

type contextKey string

const userKey contextKey = "user"

// SetUser returns a context with the authenticated user set.
func SetUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user from the context, if present.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

// SessionIDFromRequest returns the session token from the request cookie,
// or "" when the cookie is absent.
func SessionIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// RequireSession returns a wrapper that resolves the session cookie to a
// user and sets it in the request context. If the cookie is missing, the
// session is expired, or the user no longer exists, it responds 401 and
// does not call next. The resolved user is not cached across requests.
func RequireSession(auth domain.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sessionID := SessionIDFromRequest(r)
			if sessionID == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			user, err := auth.CurrentUser(r.Context(), sessionID)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			r = r.WithContext(SetUser(r.Context(), user))
			next(w, r)
		}
	}
}
