package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chalopaltai/somity-ledger/internal/ledger"
	"github.com/chalopaltai/somity-ledger/internal/models"
	"github.com/chalopaltai/somity-ledger/internal/store"
)

// MembersHandler handles member-related API endpoints.
type MembersHandler struct {
	store *store.Store
}

// NewMembersHandler creates a new MembersHandler.
func NewMembersHandler(s *store.Store) *MembersHandler {
	return &MembersHandler{store: s}
}

// List handles GET /members.
func (h *MembersHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.store.Members()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to list members")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": members})
}

// Create handles POST /members. A blank id is auto-assigned; a positive
// initial savings amount is recorded as an opening savings transaction so the
// cached balance always equals the replayed transaction history.
func (h *MembersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}
	if req.Name == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Missing name")
		return
	}
	if req.JoinDate == "" {
		req.JoinDate = time.Now().Format("2006-01-02")
	}
	if err := ledger.ValidateDate(req.JoinDate); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	if req.InitialSavings < 0 {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Initial savings must not be negative")
		return
	}

	id := req.ID
	if id == "" {
		var err error
		if id, err = h.store.NextMemberID(); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to assign member id")
			return
		}
	}

	member := models.Member{
		ID:         id,
		Name:       req.Name,
		FatherName: req.FatherName,
		Phone:      req.Phone,
		NID:        req.NID,
		Address:    req.Address,
		JoinDate:   req.JoinDate,
	}
	if err := h.store.AddMember(member); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to save member")
		return
	}

	if req.InitialSavings > 0 {
		tx := models.Transaction{
			ID:         "INIT-" + uuid.NewString(),
			MemberID:   member.ID,
			MemberName: member.Name,
			Date:       member.JoinDate,
			Amount:     req.InitialSavings,
			Type:       models.TxSavings,
			Remarks:    "Initial savings",
		}
		if err := h.store.AddTransaction(tx); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to record initial savings")
			return
		}
		member.TotalSavings = req.InitialSavings
	}

	writeJSON(w, http.StatusCreated, map[string]any{"member": member})
}

// Get handles GET /members/{id}.
func (h *MembersHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.store.GetMember(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "Member not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to get member")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"member": member})
}

// Update handles PUT /members/{id}. Balances are not editable here; they are
// derived from the transaction log.
func (h *MembersHandler) Update(w http.ResponseWriter, r *http.Request) {
	current, err := h.store.GetMember(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "Member not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to get member")
		return
	}

	var req models.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}
	if req.Name != "" {
		current.Name = req.Name
	}
	if req.FatherName != "" {
		current.FatherName = req.FatherName
	}
	if req.Phone != "" {
		current.Phone = req.Phone
	}
	if req.NID != "" {
		current.NID = req.NID
	}
	if req.Address != "" {
		current.Address = req.Address
	}
	if req.JoinDate != "" {
		if err := ledger.ValidateDate(req.JoinDate); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
			return
		}
		current.JoinDate = req.JoinDate
	}

	if err := h.store.UpdateMember(current); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to update member")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"member": current})
}

// Delete handles DELETE /members/{id} (admin only). Historic transactions of
// the member are retained.
func (h *MembersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteMember(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "Member not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to delete member")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DueMember is a member row of a due list plus the approximated due amount.
type DueMember struct {
	models.Member
	DueAmount float64 `json:"dueAmount"`
}

// SavingsDue handles GET /members/due/savings: members behind the monthly
// savings target, with how far behind they are.
func (h *MembersHandler) SavingsDue(w http.ResponseWriter, r *http.Request) {
	members, err := h.store.Members()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to list members")
		return
	}

	month := int(time.Now().Month())
	if q := r.URL.Query().Get("month"); q != "" {
		m, err := strconv.Atoi(q)
		if err != nil || m < 1 || m > 12 {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid month")
			return
		}
		month = m
	}

	due := []DueMember{}
	for _, m := range members {
		if m.TotalSavings < ledger.SavingsTarget(month) {
			due = append(due, DueMember{Member: m, DueAmount: ledger.SavingsDue(m, month)})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": due, "target": ledger.SavingsTarget(month)})
}

// LoanDue handles GET /members/due/loan: members with outstanding loans and
// the approximated due installment.
func (h *MembersHandler) LoanDue(w http.ResponseWriter, r *http.Request) {
	members, err := h.store.Members()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to list members")
		return
	}

	due := []DueMember{}
	for _, m := range members {
		if m.TotalLoan > 0 {
			due = append(due, DueMember{Member: m, DueAmount: ledger.LoanDue(m)})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": due})
}

// Ledger handles GET /members/{id}/ledger?year=Y: the year rollup with
// opening carry-forward balances and the chronological balance trail.
func (h *MembersHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	year := time.Now().Year()
	if q := r.URL.Query().Get("year"); q != "" {
		y, err := strconv.Atoi(q)
		if err != nil || y < 1 {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid year")
			return
		}
		year = y
	}

	txs, err := h.store.Transactions()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to read transactions")
		return
	}

	sheet, err := ledger.RollupYear(txs, id, year)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to compute ledger")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"year": year, "ledger": sheet})
}
