/*
csv.go - Per-table CSV extracts

PURPOSE:
  Streams one output table (schedule, journal, or deposit unwind) as CSV.
  Values render with exactly two decimal places via Money.StringFixed, so
  exporting the same run twice yields byte-identical files.

SEE ALSO:
  - export/xlsx.go: the multi-sheet workbook rendering the same tables
*/
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/meridian/lease-engine/lease"
)

// Table identifies one exportable output table.
type Table string

const (
	TableSchedule Table = "schedule"
	TableJournal  Table = "journal"
	TableDeposit  Table = "deposit"
)

// ErrUnknownTable is returned for a table name outside the fixed set.
var ErrUnknownTable = errors.New("unknown export table")

// WriteTableCSV streams the named table. Returns ErrUnknownTable for an
// unrecognized name and lease.ErrNoDepositSchedule when the deposit table
// is requested for a run without a deposit.
func WriteTableCSV(w io.Writer, result *lease.Result, table Table) error {
	switch table {
	case TableSchedule:
		return WriteScheduleCSV(w, result)
	case TableJournal:
		return WriteJournalCSV(w, result)
	case TableDeposit:
		return WriteDepositCSV(w, result)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
}

// WriteScheduleCSV streams the liability/ROU roll-forward.
func WriteScheduleCSV(w io.Writer, result *lease.Result) error {
	cw := csv.NewWriter(w)

	unit := lease.PeriodUnit(result.Parameters.PaymentFrequency)
	if err := cw.Write([]string{unit,
		"Opening Lease Liability", "Interest Expense", "Lease Payment", "Closing Lease Liability",
		"Opening ROU Asset", "Depreciation", "Closing ROU Asset"}); err != nil {
		return err
	}

	for _, row := range result.Schedule {
		record := []string{
			strconv.Itoa(row.Period),
			row.OpeningLiability.StringFixed(),
			row.Interest.StringFixed(),
			row.Payment.StringFixed(),
			row.ClosingLiability.StringFixed(),
			row.OpeningROU.StringFixed(),
			row.Depreciation.StringFixed(),
			row.ClosingROU.StringFixed(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJournalCSV streams the double-entry posting lines.
func WriteJournalCSV(w io.Writer, result *lease.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Period", "Account", "Debit", "Credit"}); err != nil {
		return err
	}

	for _, entry := range result.Journal {
		record := []string{
			strconv.Itoa(entry.Period),
			entry.Account,
			entry.Debit.StringFixed(),
			entry.Credit.StringFixed(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteDepositCSV streams the security-deposit unwind.
func WriteDepositCSV(w io.Writer, result *lease.Result) error {
	if result.Deposit == nil {
		return lease.ErrNoDepositSchedule
	}

	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Year", "Opening Balance", "Interest Income", "Closing Balance"}); err != nil {
		return err
	}

	for _, row := range result.Deposit.Rows {
		record := []string{
			strconv.Itoa(row.Year),
			row.OpeningBalance.StringFixed(),
			row.InterestIncome.StringFixed(),
			row.ClosingBalance.StringFixed(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
