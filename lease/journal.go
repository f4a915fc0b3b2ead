/*
journal.go - Double-entry postings derived from the schedules

PURPOSE:
  Turns the amortization rows (and, when present, the security-deposit
  schedule) into an append-only stream of journal lines, then runs the
  engine's only built-in correctness self-check: total debits must equal
  total credits within rounding tolerance.

POSTING ORDER (fixed, period 0 first):
  0. debit Right of Use Asset / credit Lease Liability for the PV
  0. deposit recognition (when a deposit exists): debit Security Deposit
     (Financial Asset) for its PV, debit Right of Use Asset for the
     discount difference, credit Bank for the full deposit
  n. per period: interest pair, payment pair, depreciation pair
  y. per deposit year: debit Security Deposit / credit Interest Income

INVARIANTS:
  1. Exactly one of debit/credit is nonzero per line
  2. Lines are generated in the same order as the rows that produced them
  3. Every line posts against an account in the fixed chart
  4. An imbalance is surfaced as a warning, never a silent failure

SEE ALSO:
  - schedule.go: source rows
  - deposit.go: the deposit schedule merged into the same stream
  - accounts.go: the chart every line must resolve against
*/
package lease

import "github.com/shopspring/decimal"

// JournalEntry is one posting line. Period 0 is initial recognition;
// periods 1..N follow the cadence of the table that produced the line
// (amortization periods for lease lines, years for deposit lines).
type JournalEntry struct {
	Period  int    `json:"period"`
	Account string `json:"account"`
	Debit   Money  `json:"debit"`
	Credit  Money  `json:"credit"`
}

// tolerancePerLine is the rounding slack each generated line may carry.
var tolerancePerLine = decimal.New(1, -2) // 0.01

func debitLine(period int, account string, amount Money) JournalEntry {
	MustLookupAccount(account)
	return JournalEntry{Period: period, Account: account, Debit: amount}
}

func creditLine(period int, account string, amount Money) JournalEntry {
	MustLookupAccount(account)
	return JournalEntry{Period: period, Account: account, Credit: amount}
}

// BuildJournal emits the posting stream for one computed run.
func BuildJournal(pv Money, rows []ScheduleRow, deposit *DepositSchedule) []JournalEntry {
	entries := make([]JournalEntry, 0, 2+len(rows)*6)

	// 1. Initial recognition of the lease itself.
	entries = append(entries,
		debitLine(0, AccountRightOfUse, pv),
		creditLine(0, AccountLeaseLiability, pv),
	)

	// 2. Deposit recognition: the discount on the below-market deposit is
	// treated as additional right-of-use cost.
	if deposit != nil {
		entries = append(entries,
			debitLine(0, AccountSecurityDepositAsset, deposit.PresentValue),
			debitLine(0, AccountRightOfUse, deposit.DiscountDifference),
			creditLine(0, AccountBank, deposit.Amount),
		)
	}

	// 3. Periodic postings, fixed order: interest, payment, depreciation.
	for _, row := range rows {
		entries = append(entries,
			debitLine(row.Period, AccountInterestExpense, row.Interest),
			creditLine(row.Period, AccountLeaseLiability, row.Interest),

			debitLine(row.Period, AccountLeaseLiability, row.Payment),
			creditLine(row.Period, AccountBank, row.Payment),

			debitLine(row.Period, AccountDepreciationExpense, row.Depreciation),
			creditLine(row.Period, AccountAccumulatedDepreciation, row.Depreciation),
		)
	}

	// 4. Deposit unwind: each year's accretion is interest income.
	if deposit != nil {
		for _, row := range deposit.Rows {
			entries = append(entries,
				debitLine(row.Year, AccountSecurityDeposit, row.InterestIncome),
				creditLine(row.Year, AccountInterestIncome, row.InterestIncome),
			)
		}
	}

	return entries
}

// CheckBalance verifies the double-entry invariant over the whole stream.
// Returns nil when balanced; otherwise an Imbalance carrying both totals.
// The caller attaches it to the result as a warning, results are still
// returned.
func CheckBalance(entries []JournalEntry) *Imbalance {
	totalDebit := Money{}
	totalCredit := Money{}
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	tolerance := Money{Value: tolerancePerLine.Mul(decimal.NewFromInt(int64(len(entries))))}
	if totalDebit.Sub(totalCredit).Abs().GreaterThan(tolerance) {
		return &Imbalance{TotalDebit: totalDebit, TotalCredit: totalCredit, Tolerance: tolerance}
	}
	return nil
}
