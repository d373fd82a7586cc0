// Package ledger implements the balance accounting engine: pure functions that
// turn the society's transaction log into running balances, year-opening
// carry-forwards and aggregate report figures.
package ledger

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chalopaltai/somity-ledger/internal/models"
)

// ErrUnknownTransactionType is returned when the balance-update rule meets a
// transaction type it does not know. The rule fails loudly instead of
// silently skipping the balance effect.
var ErrUnknownTransactionType = errors.New("unknown transaction type")

// Balances is a point-in-time (savings, loan) pair for one member.
type Balances struct {
	Savings float64
	Loan    float64
}

// Apply is the balance-update rule: a total function of the current balances
// and one transaction. Expense and bank entries are valid but have no effect
// on member balances.
func Apply(b Balances, txType models.TransactionType, amount float64) (Balances, error) {
	switch txType {
	case models.TxSavings:
		b.Savings += amount
	case models.TxSavingsWithdrawal:
		b.Savings -= amount
	case models.TxLoanDistribution:
		b.Loan += amount
	case models.TxLoanCollection:
		b.Loan -= amount
	case models.TxExpense, models.TxBankDeposit, models.TxBankWithdrawal:
		// Society-level cash movements; no member balance effect.
	default:
		return b, fmt.Errorf("%w: %q", ErrUnknownTransactionType, txType)
	}
	return b, nil
}

// ApplyTransaction applies the balance-update rule for tx to the matching
// member and returns the updated member list. When no member matches
// tx.MemberID the list is returned unchanged: the transaction is still a
// valid log entry (expense and bank entries carry the empty member sentinel).
func ApplyTransaction(members []models.Member, tx models.Transaction) ([]models.Member, error) {
	for i, m := range members {
		if m.ID != tx.MemberID {
			continue
		}
		next, err := Apply(Balances{Savings: m.TotalSavings, Loan: m.TotalLoan}, tx.Type, tx.Amount)
		if err != nil {
			return nil, err
		}
		members[i].TotalSavings = next.Savings
		members[i].TotalLoan = next.Loan
		break
	}
	return members, nil
}

// Replay folds the balance-update rule over txs starting from zero balances.
func Replay(txs []models.Transaction) (Balances, error) {
	var b Balances
	var err error
	for _, tx := range txs {
		if b, err = Apply(b, tx.Type, tx.Amount); err != nil {
			return Balances{}, err
		}
	}
	return b, nil
}

// Entry is one row of a member's year ledger sheet: the transaction plus the
// running balances after it was applied.
type Entry struct {
	Date           string                 `json:"date"`
	Type           models.TransactionType `json:"type"`
	Amount         float64                `json:"amount"`
	SavingsBalance float64                `json:"savingsBalance"`
	LoanBalance    float64                `json:"loanBalance"`
	Remarks        string                 `json:"remarks"`
}

// YearLedger is the result of a year rollup: balances carried forward from
// every prior year plus the chronological balance trail for the target year.
type YearLedger struct {
	OpeningSavings float64 `json:"openingSavings"`
	OpeningLoan    float64 `json:"openingLoan"`
	Entries        []Entry `json:"entries"`
}

// RollupYear partitions memberID's transactions around calendar year and
// folds the balance-update rule over both halves: everything dated before
// year builds the opening balances, everything dated within year produces a
// per-entry running snapshot.
//
// Transactions are sorted by date first (stable, so same-date entries keep
// their logged order) rather than trusting insertion order.
func RollupYear(txs []models.Transaction, memberID string, year int) (YearLedger, error) {
	prefix := fmt.Sprintf("%04d", year)

	mine := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.MemberID == memberID {
			mine = append(mine, tx)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool { return mine[i].Date < mine[j].Date })

	result := YearLedger{Entries: []Entry{}}

	var running Balances
	var err error
	for _, tx := range mine {
		txYear := yearOf(tx.Date)
		if txYear > prefix {
			break // sorted: everything from here on is after the target year
		}
		if running, err = Apply(running, tx.Type, tx.Amount); err != nil {
			return YearLedger{}, err
		}
		if txYear != prefix {
			result.OpeningSavings = running.Savings
			result.OpeningLoan = running.Loan
			continue
		}
		result.Entries = append(result.Entries, Entry{
			Date:           tx.Date,
			Type:           tx.Type,
			Amount:         tx.Amount,
			SavingsBalance: running.Savings,
			LoanBalance:    running.Loan,
			Remarks:        tx.Remarks,
		})
	}
	return result, nil
}

func yearOf(date string) string {
	if i := strings.IndexByte(date, '-'); i >= 0 {
		return date[:i]
	}
	return date
}

func monthOf(date string) string {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Aggregate sums the amounts of transactions matching pred.
func Aggregate(txs []models.Transaction, pred func(models.Transaction) bool) float64 {
	var sum float64
	for _, tx := range txs {
		if pred(tx) {
			sum += tx.Amount
		}
	}
	return sum
}

// ByType matches transactions of the given type.
func ByType(t models.TransactionType) func(models.Transaction) bool {
	return func(tx models.Transaction) bool { return tx.Type == t }
}

// OnDate matches transactions on an exact YYYY-MM-DD date.
func OnDate(date string) func(models.Transaction) bool {
	return func(tx models.Transaction) bool { return tx.Date == date }
}

// InMonth matches transactions within a YYYY-MM month.
func InMonth(month string) func(models.Transaction) bool {
	return func(tx models.Transaction) bool { return strings.HasPrefix(tx.Date, month) }
}

// IsCollection matches cash coming in from members: savings deposits and loan
// installments.
func IsCollection(tx models.Transaction) bool {
	return tx.Type == models.TxSavings || tx.Type == models.TxLoanCollection
}

func and(preds ...func(models.Transaction) bool) func(models.Transaction) bool {
	return func(tx models.Transaction) bool {
		for _, p := range preds {
			if !p(tx) {
				return false
			}
		}
		return true
	}
}

// CollectionOn returns the total member collections (savings + loan
// installments) on an exact date.
func CollectionOn(txs []models.Transaction, date string) float64 {
	return Aggregate(txs, and(OnDate(date), IsCollection))
}

// CollectionInMonth returns the total member collections within a YYYY-MM
// month.
func CollectionInMonth(txs []models.Transaction, month string) float64 {
	return Aggregate(txs, and(InMonth(month), IsCollection))
}

// MonthlySeries buckets the amounts of one transaction type into the twelve
// calendar months. Buckets aggregate across every year present in the log;
// index 0 is January.
func MonthlySeries(txs []models.Transaction, t models.TransactionType) [12]float64 {
	var series [12]float64
	for _, tx := range txs {
		if tx.Type != t {
			continue
		}
		m := monthOf(tx.Date)
		if len(m) != 2 || m < "01" || m > "12" {
			continue
		}
		idx := int(m[0]-'0')*10 + int(m[1]-'0') - 1
		series[idx] += tx.Amount
	}
	return series
}

// round half away from zero, to the nearest whole currency unit.
func round(v float64) float64 {
	return math.Round(v)
}
