package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chalopaltai/somity-ledger/internal/config"
	"github.com/chalopaltai/somity-ledger/internal/ledger"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display society summary statistics",
	Long: `Display summary statistics of the society ledger.

Shows:
- Number of members and logged transactions
- Total member savings and outstanding loans
- Expenses, bank balance and cash in hand
- Total earned profit

Example:
  somity stats`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	st, err := openStore(cfg)
	exitOnError(err, "failed to open database")
	defer func() { _ = st.Close() }()

	members, err := st.Members()
	exitOnError(err, "failed to read members")

	txs, err := st.Transactions()
	exitOnError(err, "failed to read transactions")

	summary := ledger.Summarize(members, txs)

	fmt.Println("\n=== Society Statistics ===")
	fmt.Printf("Members:          %d\n", len(members))
	fmt.Printf("Transactions:     %d\n", len(txs))
	fmt.Printf("Total savings:    %.0f\n", summary.TotalSavings)
	fmt.Printf("Current loan:     %.0f\n", summary.CurrentLoan)
	fmt.Printf("Total expenses:   %.0f\n", summary.TotalExpenses)
	fmt.Printf("Bank balance:     %.0f\n", summary.BankBalance)
	fmt.Printf("Cash in hand:     %.0f\n", summary.CashInHand)
	fmt.Printf("Total profit:     %.0f\n", summary.TotalProfit)
	fmt.Println()

	slog.Info("statistics displayed successfully")
}
