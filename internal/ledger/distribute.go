package ledger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/chalopaltai/somity-ledger/internal/models"
)

// ProfitFor is the profit credited to one member at the given percentage
// rate, rounded to the nearest whole currency unit.
func ProfitFor(savings, rate float64) float64 {
	return round(savings * rate / 100)
}

// DistributeProfit builds one savings transaction per selected member,
// crediting rate percent of the member's current savings balance. The
// returned transactions have not been recorded yet; each one flows through
// the balance-update rule like any other savings deposit when appended.
// Members not in selected are untouched; selected IDs without a matching
// member are ignored.
func DistributeProfit(members []models.Member, selected []string, rate float64, date string) []models.Transaction {
	want := make(map[string]bool, len(selected))
	for _, id := range selected {
		want[id] = true
	}

	txs := make([]models.Transaction, 0, len(selected))
	for _, m := range members {
		if !want[m.ID] {
			continue
		}
		txs = append(txs, models.Transaction{
			ID:         "DIST-" + uuid.NewString(),
			MemberID:   m.ID,
			MemberName: m.Name,
			Date:       date,
			Amount:     ProfitFor(m.TotalSavings, rate),
			Type:       models.TxSavings,
			Remarks:    fmt.Sprintf("Annual profit (%g%%)", rate),
		})
	}
	return txs
}
