// Package export renders the society's printable sheets as xlsx workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/chalopaltai/somity-ledger/internal/ledger"
	"github.com/chalopaltai/somity-ledger/internal/models"
)

// MemberLedgerSheet writes one member's year ledger to an xlsx file: the
// carried-forward opening row followed by the running balance trail.
func MemberLedgerSheet(path, societyName string, member models.Member, year int, sheet ledger.YearLedger) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	name := f.GetSheetName(0)
	set := func(cell string, value any) {
		_ = f.SetCellValue(name, cell, value)
	}

	set("A1", societyName)
	set("A2", fmt.Sprintf("Member ledger sheet - %d", year))
	set("A3", fmt.Sprintf("Member #%s: %s", member.ID, member.Name))

	headers := []string{"Date", "Type", "Amount", "Savings balance", "Loan balance", "Remarks"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		set(cell, h)
	}

	set("A6", fmt.Sprintf("%d-01-01", year))
	set("B6", "Balance B/F")
	set("D6", sheet.OpeningSavings)
	set("E6", sheet.OpeningLoan)

	for i, entry := range sheet.Entries {
		row := i + 7
		set(fmt.Sprintf("A%d", row), entry.Date)
		set(fmt.Sprintf("B%d", row), string(entry.Type))
		set(fmt.Sprintf("C%d", row), entry.Amount)
		set(fmt.Sprintf("D%d", row), entry.SavingsBalance)
		set(fmt.Sprintf("E%d", row), entry.LoanBalance)
		set(fmt.Sprintf("F%d", row), entry.Remarks)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// MonthlyRow is one labeled figure of the monthly sheet.
type MonthlyRow struct {
	Label  string
	Amount float64
}

// MonthlySheet writes a month's collection/expense figures to an xlsx file.
func MonthlySheet(path, societyName, month string, rows []MonthlyRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	name := f.GetSheetName(0)
	set := func(cell string, value any) {
		_ = f.SetCellValue(name, cell, value)
	}

	set("A1", societyName)
	set("A2", fmt.Sprintf("Monthly report sheet - %s", month))
	set("A4", "Head")
	set("B4", "Amount")

	for i, row := range rows {
		set(fmt.Sprintf("A%d", i+5), row.Label)
		set(fmt.Sprintf("B%d", i+5), row.Amount)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
