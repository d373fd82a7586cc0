package models

// TransactionType classifies a cash movement in the society ledger.
type TransactionType string

// Known transaction types.
const (
	TxSavings           TransactionType = "savings"
	TxLoanCollection    TransactionType = "loan_collection"
	TxLoanDistribution  TransactionType = "loan_distribution"
	TxExpense           TransactionType = "expense"
	TxSavingsWithdrawal TransactionType = "savings_withdrawal"
	TxBankDeposit       TransactionType = "bank_deposit"
	TxBankWithdrawal    TransactionType = "bank_withdrawal"
)

// TransactionTypes lists every valid transaction type.
var TransactionTypes = []TransactionType{
	TxSavings,
	TxLoanCollection,
	TxLoanDistribution,
	TxExpense,
	TxSavingsWithdrawal,
	TxBankDeposit,
	TxBankWithdrawal,
}

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	for _, known := range TransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// RequiresMember reports whether transactions of this type must reference a
// member. Expense and bank-deposit entries are society-level and carry the
// empty member sentinel.
func (t TransactionType) RequiresMember() bool {
	return t != TxExpense && t != TxBankDeposit
}

// Transaction is one immutable entry of the append-only cash log.
//
// MemberName is a denormalized snapshot of the member's name at entry time.
// Renaming a member later does not rewrite history; that is intentional.
type Transaction struct {
	ID         string          `json:"id" yaml:"id"`
	MemberID   string          `json:"memberId" yaml:"memberId"` // "" for society-level entries
	MemberName string          `json:"memberName" yaml:"memberName"`
	Date       string          `json:"date" yaml:"date"` // YYYY-MM-DD
	Amount     float64         `json:"amount" yaml:"amount"`
	Type       TransactionType `json:"type" yaml:"type"`
	Remarks    string          `json:"remarks,omitempty" yaml:"remarks,omitempty"`
}

// CreateTransactionRequest represents the transaction entry form.
type CreateTransactionRequest struct {
	MemberID string          `json:"memberId"`
	Date     string          `json:"date"`
	Amount   *float64        `json:"amount"`
	Type     TransactionType `json:"type"`
	Remarks  string          `json:"remarks"`
}

// DistributeProfitRequest represents the profit distribution form.
type DistributeProfitRequest struct {
	MemberIDs []string `json:"memberIds"`
	Rate      *float64 `json:"rate"`
	Date      string   `json:"date"`
}
