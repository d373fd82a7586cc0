package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/chalopaltai/somity-ledger/internal/models"
	"github.com/chalopaltai/somity-ledger/internal/store"
)

type contextKey string

const contextKeyUser contextKey = "user"

// SessionMiddleware resolves the current session from the store and injects
// the logged-in user into the request context. Requests without a session are
// rejected. The session is an explicit dependency of each handler, never a
// package-level global.
func SessionMiddleware(s *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := s.CurrentUser()
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to resolve session")
				return
			}
			if user == nil {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Not logged in")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyUser, *user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose session user is not an administrator.
// It must run after SessionMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFrom(r.Context())
		if !ok || user.Role != models.RoleAdmin {
			writeJSONError(w, http.StatusForbidden, "forbidden", "Administrator role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFrom extracts the session user placed in ctx by SessionMiddleware.
func UserFrom(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(contextKeyUser).(models.User)
	return user, ok
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, code, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            code,
		ErrorDescription: description,
	})
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
