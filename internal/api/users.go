package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chalopaltai/somity-ledger/internal/models"
	"github.com/chalopaltai/somity-ledger/internal/store"
)

// UsersHandler handles user management endpoints (admin only).
type UsersHandler struct {
	store *store.Store
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(s *store.Store) *UsersHandler {
	return &UsersHandler{store: s}
}

// List handles GET /users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.Users()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to list users")
		return
	}
	sanitized := make([]models.User, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitized()
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": sanitized})
}

// Create handles POST /users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}
	if req.Username == "" || req.Name == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Missing username or name")
		return
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleUser {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Role must be admin or user")
		return
	}
	if len(req.Password) < 6 {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Password must be at least 6 characters")
		return
	}

	if _, err := h.store.FindUserByUsername(req.Username); err == nil {
		writeJSONError(w, http.StatusConflict, "conflict", "Username already taken")
		return
	}

	users, err := h.store.Users()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to read users")
		return
	}

	next := 1
	for _, u := range users {
		if n, err := strconv.Atoi(u.ID); err == nil && n >= next {
			next = n + 1
		}
	}

	user := models.User{
		ID:       strconv.Itoa(next),
		Username: req.Username,
		Name:     req.Name,
		Role:     req.Role,
		Password: req.Password,
	}
	if err := h.store.AddUser(user); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to save user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": user.Sanitized()})
}

// Delete handles DELETE /users/{id}. The last remaining account cannot be
// removed.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteUser(chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrLastUser):
			writeJSONError(w, http.StatusConflict, "conflict", "At least one user must remain")
		case errors.Is(err, store.ErrNotFound):
			writeJSONError(w, http.StatusNotFound, "not_found", "User not found")
		default:
			writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to delete user")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
