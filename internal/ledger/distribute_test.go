package ledger

import (
	"strings"
	"testing"

	"github.com/chalopaltai/somity-ledger/internal/models"
)

func TestProfitFor(t *testing.T) {
	tests := []struct {
		name    string
		savings float64
		rate    float64
		want    float64
	}{
		{"ten percent of 8200", 8200, 10, 820},
		{"rounds up", 8250, 10, 825},
		{"rounds half up", 125, 10, 13}, // 12.5 -> 13
		{"zero savings", 0, 10, 0},
		{"fractional rate", 1000, 7.5, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProfitFor(tt.savings, tt.rate); got != tt.want {
				t.Errorf("ProfitFor(%v, %v) = %v, want %v", tt.savings, tt.rate, got, tt.want)
			}
		})
	}
}

func TestDistributeProfit(t *testing.T) {
	members := []models.Member{
		{ID: "101", Name: "Karim", TotalSavings: 5500},
		{ID: "102", Name: "Rahim", TotalSavings: 8200},
		{ID: "103", Name: "Zaman", TotalSavings: 3000},
	}

	txs := DistributeProfit(members, []string{"102", "103"}, 10, "2025-12-31")

	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}

	byMember := map[string]models.Transaction{}
	for _, tx := range txs {
		byMember[tx.MemberID] = tx
	}
	if _, ok := byMember["101"]; ok {
		t.Error("unselected member 101 received a distribution")
	}
	if tx := byMember["102"]; tx.Amount != 820 {
		t.Errorf("member 102 amount = %v, want 820", tx.Amount)
	}
	if tx := byMember["103"]; tx.Amount != 300 {
		t.Errorf("member 103 amount = %v, want 300", tx.Amount)
	}

	for _, tx := range txs {
		if tx.Type != models.TxSavings {
			t.Errorf("type = %s, want savings", tx.Type)
		}
		if tx.Date != "2025-12-31" {
			t.Errorf("date = %s, want 2025-12-31", tx.Date)
		}
		if !strings.Contains(tx.Remarks, "10%") {
			t.Errorf("remarks %q should name the rate", tx.Remarks)
		}
		if tx.ID == "" {
			t.Error("transaction id must be assigned")
		}
	}
}

func TestDistributeProfitFlowsThroughBalanceRule(t *testing.T) {
	members := []models.Member{{ID: "102", Name: "Rahim", TotalSavings: 8200}}

	txs := DistributeProfit(members, []string{"102"}, 10, "2025-12-31")
	for _, tx := range txs {
		var err error
		if members, err = ApplyTransaction(members, tx); err != nil {
			t.Fatalf("ApplyTransaction() error: %v", err)
		}
	}

	if members[0].TotalSavings != 9020 {
		t.Errorf("totalSavings = %v, want 9020", members[0].TotalSavings)
	}
}

func TestDistributeProfitUnknownSelection(t *testing.T) {
	members := []models.Member{{ID: "101", TotalSavings: 100}}

	if txs := DistributeProfit(members, []string{"999"}, 10, "2025-12-31"); len(txs) != 0 {
		t.Errorf("got %d transactions for unknown member, want 0", len(txs))
	}
}
