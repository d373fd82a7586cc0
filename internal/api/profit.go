package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chalopaltai/somity-ledger/internal/ledger"
	"github.com/chalopaltai/somity-ledger/internal/models"
	"github.com/chalopaltai/somity-ledger/internal/store"
)

// ProfitHandler handles profit distribution (admin only).
type ProfitHandler struct {
	store *store.Store
}

// NewProfitHandler creates a new ProfitHandler.
func NewProfitHandler(s *store.Store) *ProfitHandler {
	return &ProfitHandler{store: s}
}

// Distribute handles POST /profit/distribution: credits rate percent of each
// selected member's savings balance as a savings transaction. The whole run
// is recorded atomically.
func (h *ProfitHandler) Distribute(w http.ResponseWriter, r *http.Request) {
	var req models.DistributeProfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}
	if len(req.MemberIDs) == 0 {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Select at least one member")
		return
	}
	if err := ledger.ValidateRate(req.Rate); err != nil {
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

	members, err := h.store.Members()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to read members")
		return
	}

	txs := ledger.DistributeProfit(members, req.MemberIDs, *req.Rate, req.Date)
	if len(txs) == 0 {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "No selected member exists")
		return
	}

	if err := h.store.AddTransactions(txs); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to record distribution")
		return
	}

	var total float64
	for _, tx := range txs {
		total += tx.Amount
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"transactions": txs,
		"totalAmount":  total,
	})
}
