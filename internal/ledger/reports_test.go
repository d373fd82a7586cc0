package ledger

import (
	"testing"

	"github.com/chalopaltai/somity-ledger/internal/models"
)

func TestSummarize(t *testing.T) {
	members := []models.Member{
		{ID: "101", TotalSavings: 5500, TotalLoan: 6000},
		{ID: "102", TotalSavings: 8200, TotalLoan: 0},
	}
	txs := []models.Transaction{
		{Type: models.TxExpense, Amount: 700},
		{Type: models.TxBankDeposit, Amount: 2000},
		{Type: models.TxBankWithdrawal, Amount: 500},
		{Type: models.TxLoanCollection, Amount: 1000, MemberID: "101"},
	}

	s := Summarize(members, txs)

	if s.TotalSavings != 13700 {
		t.Errorf("TotalSavings = %v, want 13700", s.TotalSavings)
	}
	if s.CurrentLoan != 6000 {
		t.Errorf("CurrentLoan = %v, want 6000", s.CurrentLoan)
	}
	if s.TotalExpenses != 700 {
		t.Errorf("TotalExpenses = %v, want 700", s.TotalExpenses)
	}
	if s.BankBalance != 1500 {
		t.Errorf("BankBalance = %v, want 1500", s.BankBalance)
	}
	// 13700 - 6000 - 700 - 1500
	if s.CashInHand != 5500 {
		t.Errorf("CashInHand = %v, want 5500", s.CashInHand)
	}
	// round(1000 * 0.09)
	if s.TotalProfit != 90 {
		t.Errorf("TotalProfit = %v, want 90", s.TotalProfit)
	}
}

func TestProfitReport(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TxLoanCollection, Amount: 203500},
		{Type: models.TxSavings, Amount: 999}, // not an income head
	}
	cats := IncomeCategories{AdmissionFees: 12500, SavingsFines: 3200, LoanFines: 4500, LoanFormFees: 2100}

	got := ProfitReport(txs, cats)

	// round(203500 / 11) = 18500
	if got.LoanCollectionProfit != 18500 {
		t.Errorf("LoanCollectionProfit = %v, want 18500", got.LoanCollectionProfit)
	}
	if got.TotalProfit != 12500+3200+4500+2100+18500 {
		t.Errorf("TotalProfit = %v, want 40800", got.TotalProfit)
	}
}

func TestProfitReportRounding(t *testing.T) {
	txs := []models.Transaction{{Type: models.TxLoanCollection, Amount: 100}}

	got := ProfitReport(txs, IncomeCategories{})

	// 100/11 = 9.0909..., rounds to 9
	if got.LoanCollectionProfit != 9 {
		t.Errorf("LoanCollectionProfit = %v, want 9", got.LoanCollectionProfit)
	}
}

func TestDues(t *testing.T) {
	tests := []struct {
		name  string
		m     models.Member
		month int
		want  float64
	}{
		{"behind target", models.Member{TotalSavings: 150}, 6, 450},
		{"on target", models.Member{TotalSavings: 600}, 6, 0},
		{"ahead of target", models.Member{TotalSavings: 2000}, 6, 0},
		{"january reset", models.Member{TotalSavings: 0}, 1, 100},
		{"december", models.Member{TotalSavings: 0}, 12, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SavingsDue(tt.m, tt.month); got != tt.want {
				t.Errorf("SavingsDue() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := LoanDue(models.Member{TotalLoan: 6000}); got != 600 {
		t.Errorf("LoanDue() = %v, want 600", got)
	}
	if got := LoanDue(models.Member{}); got != 0 {
		t.Errorf("LoanDue() = %v, want 0", got)
	}
}
