package ledger

import (
	"math"

	"github.com/chalopaltai/somity-ledger/internal/models"
)

// Share of each collected loan installment that is counted as earned profit.
const (
	loanProfitShare   = 0.09 // of total loan collections, overview figure
	loanProfitDivisor = 11   // installment split used by the income report
	loanDueRate       = 0.1  // of outstanding loan, due approximation
	savingsTargetUnit = 100  // expected savings per elapsed calendar month
)

// Summary is the society-wide financial overview shown on the dashboard and
// the report sheets.
type Summary struct {
	TotalSavings  float64 `json:"totalSavings"`
	CurrentLoan   float64 `json:"currentLoan"`
	TotalExpenses float64 `json:"totalExpenses"`
	BankBalance   float64 `json:"bankBalance"` // deposits minus withdrawals
	CashInHand    float64 `json:"cashInHand"`
	TotalProfit   float64 `json:"totalProfit"`
}

// Summarize derives the overview figures from the member list and the full
// transaction log. Cash in hand is what remains of member savings after
// outstanding loans, expenses and the net bank balance.
func Summarize(members []models.Member, txs []models.Transaction) Summary {
	var s Summary
	for _, m := range members {
		s.TotalSavings += m.TotalSavings
		s.CurrentLoan += m.TotalLoan
	}
	s.TotalExpenses = Aggregate(txs, ByType(models.TxExpense))
	deposits := Aggregate(txs, ByType(models.TxBankDeposit))
	withdrawals := Aggregate(txs, ByType(models.TxBankWithdrawal))
	s.BankBalance = deposits - withdrawals
	s.CashInHand = s.TotalSavings - s.CurrentLoan - s.TotalExpenses - s.BankBalance
	s.TotalProfit = round(Aggregate(txs, ByType(models.TxLoanCollection)) * loanProfitShare)
	return s
}

// IncomeCategories are the fixed income heads of the society outside the loan
// business: admission fees, fines and loan form fees.
type IncomeCategories struct {
	AdmissionFees float64 `json:"admissionFees" yaml:"admissionFees"`
	SavingsFines  float64 `json:"savingsFines" yaml:"savingsFines"`
	LoanFines     float64 `json:"loanFines" yaml:"loanFines"`
	LoanFormFees  float64 `json:"loanFormFees" yaml:"loanFormFees"`
}

// ProfitBreakdown itemizes the society's earnings by income head.
type ProfitBreakdown struct {
	IncomeCategories
	LoanCollectionProfit float64 `json:"loanCollectionProfit"`
	TotalProfit          float64 `json:"totalProfit"`
}

// ProfitReport combines the fixed income heads with the profit share embedded
// in collected loan installments (one part in eleven of every collection).
func ProfitReport(txs []models.Transaction, cats IncomeCategories) ProfitBreakdown {
	collected := Aggregate(txs, ByType(models.TxLoanCollection))
	share := round(collected / loanProfitDivisor)
	return ProfitBreakdown{
		IncomeCategories:     cats,
		LoanCollectionProfit: share,
		TotalProfit:          cats.AdmissionFees + cats.SavingsFines + cats.LoanFines + cats.LoanFormFees + share,
	}
}

// LoanDue approximates a member's currently due loan installment as a tenth
// of the outstanding loan. There is no repayment schedule to compute against.
func LoanDue(m models.Member) float64 {
	return m.TotalLoan * loanDueRate
}

// SavingsTarget is the savings every member is expected to hold by the given
// calendar month (1..12). The target resets each January.
func SavingsTarget(month int) float64 {
	return float64(month) * savingsTargetUnit
}

// SavingsDue is how far a member is behind the savings target for the given
// calendar month; zero when the member is on or ahead of target.
func SavingsDue(m models.Member, month int) float64 {
	return math.Max(0, SavingsTarget(month)-m.TotalSavings)
}
