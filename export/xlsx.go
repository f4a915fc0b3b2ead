/*
Package export renders computed lease results as spreadsheet files.

PURPOSE:
  Turns a lease.Result into the files accountants actually consume: a
  multi-sheet XLSX workbook and per-table CSV extracts. The package is a
  pure presentation layer - it never recomputes anything, it only formats
  the already-rounded values the engine produced.

WORKBOOK LAYOUT:
  "Lease Inputs"     - Parameter/Value echo of the inputs plus the derived
                       headline numbers (present value, depreciation, totals)
  "Lease Schedule"   - one row per period: liability and ROU roll-forward
  "Journal Entries"  - the double-entry posting stream
  "Security Deposit" - deposit unwind, only when the run has a deposit

NUMBER HANDLING:
  Monetary cells are written as numbers (already rounded to 2 decimals by
  the engine) so spreadsheet formulas keep working. CSV extracts render
  with exactly two decimal places for byte-stable output.

USAGE:
  f, err := export.Workbook("HQ lease", result)
  if err != nil { ... }
  defer f.Close()
  err = f.SaveAs("lease_schedule.xlsx")

SEE ALSO:
  - export/csv.go: per-table CSV extracts
  - lease/engine.go: the Result being rendered
*/
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/meridian/lease-engine/lease"
)

// Sheet names, fixed. The deposit sheet only exists when the run has one.
const (
	SheetInputs   = "Lease Inputs"
	SheetSchedule = "Lease Schedule"
	SheetJournal  = "Journal Entries"
	SheetDeposit  = "Security Deposit"
)

// DefaultWorkbookName is the conventional output filename.
const DefaultWorkbookName = "lease_schedule.xlsx"

// Workbook renders a computed result into a new XLSX file. The caller owns
// the returned file and must Close it.
func Workbook(name string, result *lease.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	w := &sheetWriter{file: f}

	// The default sheet becomes the inputs sheet.
	if err := f.SetSheetName("Sheet1", SheetInputs); err != nil {
		return nil, fmt.Errorf("failed to create workbook: %w", err)
	}
	writeInputsSheet(w, name, result)

	w.newSheet(SheetSchedule)
	writeScheduleSheet(w, result)

	w.newSheet(SheetJournal)
	writeJournalSheet(w, result)

	if result.Deposit != nil {
		w.newSheet(SheetDeposit)
		writeDepositSheet(w, result.Deposit)
	}

	if w.err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to render workbook: %w", w.err)
	}

	// Open on the inputs sheet.
	if idx, err := f.GetSheetIndex(SheetInputs); err == nil {
		f.SetActiveSheet(idx)
	}

	return f, nil
}

// =============================================================================
// SHEETS
// =============================================================================

func writeInputsSheet(w *sheetWriter, name string, result *lease.Result) {
	p := result.Parameters

	// Zero-value enums mean the engine defaults; show them spelled out.
	frequency := p.PaymentFrequency
	if frequency == "" {
		frequency = lease.FrequencyAnnual
	}
	timing := p.PaymentTiming
	if timing == "" {
		timing = lease.TimingEndOfPeriod
	}

	w.row(SheetInputs, "Parameter", "Value")
	if name != "" {
		w.row(SheetInputs, "Lease Name", name)
	}
	w.row(SheetInputs, "Lease Payment", p.PaymentAmount.Float64())
	w.row(SheetInputs, "Discount Rate (%)", p.AnnualDiscountRatePercent)
	w.row(SheetInputs, "Lease Term (Years)", p.TermYears)
	w.row(SheetInputs, "Payment Frequency", string(frequency))
	w.row(SheetInputs, "Payment Timing", string(timing))

	if e := p.Escalation; e != nil {
		w.row(SheetInputs, "Escalation Rate (%)", e.RatePercent)
		w.row(SheetInputs, "Escalation Frequency", string(e.Frequency))
		w.row(SheetInputs, "Escalation Starts After (Years)", e.StartAfterYears)
	}
	if d := p.SecurityDeposit; d != nil {
		w.row(SheetInputs, "Security Deposit", d.Amount.Float64())
		w.row(SheetInputs, "Deposit Rate (%)", d.AnnualRatePercent)
	}
	if p.LockInYears > 0 {
		w.row(SheetInputs, "Lock-In Period (Years)", p.LockInYears)
	}

	// Derived headline numbers.
	w.row(SheetInputs, "Present Value of Lease Payments", result.PresentValue.Float64())
	w.row(SheetInputs, fmt.Sprintf("Depreciation per %s", lease.PeriodUnit(p.PaymentFrequency)), result.DepreciationPerPeriod.Float64())
	w.row(SheetInputs, "Total Interest", result.TotalInterest.Float64())
	w.row(SheetInputs, "Total Payments", result.TotalPayments.Float64())
	if lock := result.LockIn; lock != nil {
		w.row(SheetInputs, "Locked-In Payments", lock.LockedPayments.Float64())
	}
}

func writeScheduleSheet(w *sheetWriter, result *lease.Result) {
	unit := lease.PeriodUnit(result.Parameters.PaymentFrequency)
	w.row(SheetSchedule, unit,
		"Opening Lease Liability", "Interest Expense", "Lease Payment", "Closing Lease Liability",
		"Opening ROU Asset", "Depreciation", "Closing ROU Asset")

	for _, row := range result.Schedule {
		w.row(SheetSchedule, row.Period,
			row.OpeningLiability.Float64(), row.Interest.Float64(), row.Payment.Float64(), row.ClosingLiability.Float64(),
			row.OpeningROU.Float64(), row.Depreciation.Float64(), row.ClosingROU.Float64())
	}
}

func writeJournalSheet(w *sheetWriter, result *lease.Result) {
	w.row(SheetJournal, "Period", "Account", "Debit", "Credit")
	for _, entry := range result.Journal {
		w.row(SheetJournal, entry.Period, entry.Account, entry.Debit.Float64(), entry.Credit.Float64())
	}
}

func writeDepositSheet(w *sheetWriter, deposit *lease.DepositSchedule) {
	w.row(SheetDeposit, "Year", "Opening Balance", "Interest Income", "Closing Balance")
	for _, row := range deposit.Rows {
		w.row(SheetDeposit, row.Year, row.OpeningBalance.Float64(), row.InterestIncome.Float64(), row.ClosingBalance.Float64())
	}
}

// =============================================================================
// SHEET WRITER - Accumulates the first error instead of checking every cell
// =============================================================================

type sheetWriter struct {
	file    *excelize.File
	nextRow map[string]int
	err     error
}

func (w *sheetWriter) newSheet(name string) {
	if w.err != nil {
		return
	}
	_, w.err = w.file.NewSheet(name)
}

// row appends one row to the named sheet.
func (w *sheetWriter) row(sheet string, values ...interface{}) {
	if w.err != nil {
		return
	}
	if w.nextRow == nil {
		w.nextRow = make(map[string]int)
	}
	w.nextRow[sheet]++

	cell, err := excelize.CoordinatesToCellName(1, w.nextRow[sheet])
	if err != nil {
		w.err = err
		return
	}
	w.err = w.file.SetSheetRow(sheet, cell, &values)
}
