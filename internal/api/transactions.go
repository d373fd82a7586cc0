package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chalopaltai/somity-ledger/internal/ledger"
	"github.com/chalopaltai/somity-ledger/internal/models"
	"github.com/chalopaltai/somity-ledger/internal/store"
)

// TransactionsHandler handles transaction log API endpoints.
type TransactionsHandler struct {
	store *store.Store
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(s *store.Store) *TransactionsHandler {
	return &TransactionsHandler{store: s}
}

// List handles GET /transactions with optional type, member_id, date and
// month (YYYY-MM) filters.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	txs, err := h.store.Transactions()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to list transactions")
		return
	}

	q := r.URL.Query()
	txType := q.Get("type")
	memberID := q.Get("member_id")
	date := q.Get("date")
	month := q.Get("month")

	filtered := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if txType != "" && string(tx.Type) != txType {
			continue
		}
		if memberID != "" && tx.MemberID != memberID {
			continue
		}
		if date != "" && tx.Date != date {
			continue
		}
		if month != "" && !strings.HasPrefix(tx.Date, month) {
			continue
		}
		filtered = append(filtered, tx)
	}

	writeJSON(w, http.StatusOK, map[string]any{"transactions": filtered})
}

// Create handles POST /transactions. Input is validated before any state
// mutation; the append and the member balance update are then one atomic
// store operation.
func (h *TransactionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	if !req.Type.Valid() {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Unknown transaction type")
		return
	}
	if err := ledger.ValidateAmount(req.Amount); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	if err := ledger.ValidateDate(req.Date); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	if req.Type.RequiresMember() && req.MemberID == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "A member must be selected for this transaction type")
		return
	}

	var memberName string
	if req.MemberID != "" {
		member, err := h.store.GetMember(req.MemberID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Member not found")
				return
			}
			writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to look up member")
			return
		}
		memberName = member.Name
	}

	tx := models.Transaction{
		ID:         "TXN-" + uuid.NewString(),
		MemberID:   req.MemberID,
		MemberName: memberName,
		Date:       req.Date,
		Amount:     *req.Amount,
		Type:       req.Type,
		Remarks:    req.Remarks,
	}

	if err := h.store.AddTransaction(tx); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to record transaction")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"transaction": tx})
}
