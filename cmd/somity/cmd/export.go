package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/chalopaltai/somity-ledger/internal/api"
	"github.com/chalopaltai/somity-ledger/internal/config"
	"github.com/chalopaltai/somity-ledger/internal/export"
	"github.com/chalopaltai/somity-ledger/internal/ledger"
)

var (
	exportMember string
	exportYear   int
	exportMonth  string
	exportOut    string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export report sheets to xlsx",
}

var exportLedgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Export a member's year ledger sheet",
	Long: `Export one member's ledger sheet for a calendar year: opening
carried-forward balances followed by the running balance trail.

Example:
  somity export ledger --member 101 --year 2025 --out ledger.xlsx`,
	Run: runExportLedger,
}

var exportMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Export a monthly report sheet",
	Long: `Export the collection and expense figures of one month.

Example:
  somity export monthly --month 2025-06 --out monthly.xlsx`,
	Run: runExportMonthly,
}

func init() {
	exportLedgerCmd.Flags().StringVar(&exportMember, "member", "", "member id (required)")
	exportLedgerCmd.Flags().IntVar(&exportYear, "year", time.Now().Year(), "calendar year")
	exportLedgerCmd.Flags().StringVar(&exportOut, "out", "ledger.xlsx", "output file")
	_ = exportLedgerCmd.MarkFlagRequired("member")

	exportMonthlyCmd.Flags().StringVar(&exportMonth, "month", time.Now().Format("2006-01"), "month (YYYY-MM)")
	exportMonthlyCmd.Flags().StringVar(&exportOut, "out", "monthly.xlsx", "output file")

	exportCmd.AddCommand(exportLedgerCmd)
	exportCmd.AddCommand(exportMonthlyCmd)
}

func runExportLedger(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	st, err := openStore(cfg)
	exitOnError(err, "failed to open database")
	defer func() { _ = st.Close() }()

	member, err := st.GetMember(exportMember)
	exitOnError(err, "failed to find member")

	txs, err := st.Transactions()
	exitOnError(err, "failed to read transactions")

	sheet, err := ledger.RollupYear(txs, exportMember, exportYear)
	exitOnError(err, "failed to compute ledger")

	err = export.MemberLedgerSheet(exportOut, cfg.SocietyName, member, exportYear, sheet)
	exitOnError(err, "failed to write workbook")

	slog.Info("ledger sheet exported", "member", exportMember, "year", exportYear, "out", exportOut, "entries", len(sheet.Entries))
}

func runExportMonthly(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	st, err := openStore(cfg)
	exitOnError(err, "failed to open database")
	defer func() { _ = st.Close() }()

	txs, err := st.Transactions()
	exitOnError(err, "failed to read transactions")

	report := api.MonthlyReportFor(txs, exportMonth)
	rows := []export.MonthlyRow{
		{Label: "Savings collection", Amount: report.SavingsCollection},
		{Label: "Loan collection", Amount: report.LoanCollection},
		{Label: "Loan distribution", Amount: report.LoanDistribution},
		{Label: "Savings withdrawal", Amount: report.SavingsWithdrawal},
		{Label: "Expenses", Amount: report.Expenses},
		{Label: "Bank deposit", Amount: report.BankDeposit},
		{Label: "Bank withdrawal", Amount: report.BankWithdrawal},
		{Label: "Net collection", Amount: report.NetCollection},
	}

	err = export.MonthlySheet(exportOut, cfg.SocietyName, exportMonth, rows)
	exitOnError(err, "failed to write workbook")

	slog.Info("monthly sheet exported", "month", exportMonth, "out", exportOut)
}
