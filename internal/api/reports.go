package api

import (
	"net/http"
	"time"

	"github.com/chalopaltai/somity-ledger/internal/ledger"
	"github.com/chalopaltai/somity-ledger/internal/models"
	"github.com/chalopaltai/somity-ledger/internal/store"
)

// ReportsHandler handles derived report endpoints.
type ReportsHandler struct {
	store  *store.Store
	income ledger.IncomeCategories
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(s *store.Store, income ledger.IncomeCategories) *ReportsHandler {
	return &ReportsHandler{store: s, income: income}
}

func (h *ReportsHandler) snapshot(w http.ResponseWriter) ([]models.Member, []models.Transaction, bool) {
	members, err := h.store.Members()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to read members")
		return nil, nil, false
	}
	txs, err := h.store.Transactions()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to read transactions")
		return nil, nil, false
	}
	return members, txs, true
}

// Summary handles GET /reports/summary: the dashboard overview plus today's
// and this month's collections.
func (h *ReportsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	members, txs, ok := h.snapshot(w)
	if !ok {
		return
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	thisMonth := now.Format("2006-01")

	summary := ledger.Summarize(members, txs)
	writeJSON(w, http.StatusOK, map[string]any{
		"summary":           summary,
		"todayCollection":   ledger.CollectionOn(txs, today),
		"monthlyCollection": ledger.CollectionInMonth(txs, thisMonth),
	})
}

// MonthlySeries handles GET /reports/monthly-series: twelve buckets per
// calendar month (aggregated across all years) for the savings vs loan
// collection chart.
func (h *ReportsHandler) MonthlySeries(w http.ResponseWriter, r *http.Request) {
	txs, err := h.store.Transactions()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to read transactions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"savings":        ledger.MonthlySeries(txs, models.TxSavings),
		"loanCollection": ledger.MonthlySeries(txs, models.TxLoanCollection),
	})
}

// MonthlyReport is the figures of one month's report sheet.
type MonthlyReport struct {
	Month             string  `json:"month"`
	SavingsCollection float64 `json:"savingsCollection"`
	LoanCollection    float64 `json:"loanCollection"`
	LoanDistribution  float64 `json:"loanDistribution"`
	SavingsWithdrawal float64 `json:"savingsWithdrawal"`
	Expenses          float64 `json:"expenses"`
	BankDeposit       float64 `json:"bankDeposit"`
	BankWithdrawal    float64 `json:"bankWithdrawal"`
	NetCollection     float64 `json:"netCollection"`
}

// MonthlyReportFor computes the month sheet figures from the transaction log.
func MonthlyReportFor(txs []models.Transaction, month string) MonthlyReport {
	byType := func(t models.TransactionType) float64 {
		return ledger.Aggregate(txs, func(tx models.Transaction) bool {
			return tx.Type == t && len(tx.Date) >= len(month) && tx.Date[:len(month)] == month
		})
	}
	report := MonthlyReport{
		Month:             month,
		SavingsCollection: byType(models.TxSavings),
		LoanCollection:    byType(models.TxLoanCollection),
		LoanDistribution:  byType(models.TxLoanDistribution),
		SavingsWithdrawal: byType(models.TxSavingsWithdrawal),
		Expenses:          byType(models.TxExpense),
		BankDeposit:       byType(models.TxBankDeposit),
		BankWithdrawal:    byType(models.TxBankWithdrawal),
	}
	report.NetCollection = report.SavingsCollection + report.LoanCollection -
		report.SavingsWithdrawal - report.Expenses - report.LoanDistribution
	return report
}

// Monthly handles GET /reports/monthly?month=YYYY-MM: the monthly sheet.
func (h *ReportsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid month, want YYYY-MM")
		return
	}

	txs, err := h.store.Transactions()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to read transactions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"report": MonthlyReportFor(txs, month)})
}

// Profit handles GET /reports/profit: income heads and total earned profit.
func (h *ReportsHandler) Profit(w http.ResponseWriter, r *http.Request) {
	txs, err := h.store.Transactions()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to read transactions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"profit": ledger.ProfitReport(txs, h.income)})
}
