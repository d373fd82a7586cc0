package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chalopaltai/somity-ledger/internal/models"
	"github.com/chalopaltai/somity-ledger/internal/store"
)

// SessionHandler handles login, logout and the session endpoint.
type SessionHandler struct {
	store *store.Store
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(s *store.Store) *SessionHandler {
	return &SessionHandler{store: s}
}

// Login handles POST /login. Credentials are compared in plaintext against
// the stored user records; the username match is case-insensitive.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Missing username or password")
		return
	}

	user, err := h.store.FindUserByUsername(req.Username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to read users")
		return
	}
	if errors.Is(err, store.ErrNotFound) || user.Password != req.Password {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Wrong username or password")
		return
	}

	if err := h.store.SetCurrentUser(&user); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to store session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user.Sanitized()})
}

// Logout handles POST /logout by clearing the session slot.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.SetCurrentUser(nil); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to clear session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /session, returning the logged-in user.
func (h *SessionHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"user": user.Sanitized()})
}

// ChangePassword handles POST /password for the logged-in user.
func (h *SessionHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFrom(r.Context())

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}
	if req.CurrentPassword != user.Password {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Current password is wrong")
		return
	}
	if len(req.NewPassword) < 6 {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "New password must be at least 6 characters")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Passwords do not match")
		return
	}

	user.Password = req.NewPassword
	if err := h.store.UpdateUser(user); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to update password")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
