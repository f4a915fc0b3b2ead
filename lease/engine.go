/*
engine.go - Full computation pipeline

PURPOSE:
  Runs the complete lease computation from raw parameters to a finished
  Result: normalized inputs, present value, amortization schedule, journal
  entries, deposit unwind, and lock-in summary.

PIPELINE:
  1. Normalize parameters (validate, derive period count and rate, expand rents)
  2. Present value of all payments and straight-line depreciation
  3. Period-by-period liability and ROU schedule
  4. Security deposit discounting and accretion (when a deposit exists)
  5. Lock-in summary (when a lock-in exists)
  6. Double-entry journal
  7. Journal balance check
  8. Totals

DETERMINISM:
  Every intermediate value is rounded to 2 decimal places the moment it is
  produced, and later arithmetic consumes the rounded value. Running the
  same parameters twice yields byte-identical results, including any
  rounding drift in the final period.

IMBALANCE HANDLING:
  A journal that fails the balance check does NOT fail the computation.
  The Result carries the Imbalance so callers can surface it as a warning
  alongside the otherwise-complete output.

EXAMPLE:
  result, err := lease.Compute(lease.Parameters{
      PaymentAmount:            lease.NewMoney(50000),
      AnnualDiscountRatePercent: 9.0,
      TermYears:                8,
  })
  if err != nil {
      log.Fatal(err)
  }
  fmt.Println("PV:", result.PresentValue)

SEE ALSO:
  - normalize.go: step 1
  - presentvalue.go: step 2
  - schedule.go: step 3
  - deposit.go: step 4
  - lockin.go: step 5
  - journal.go: steps 6-7
*/
package lease

// =============================================================================
// RESULT - Complete output of one computation
// =============================================================================

// Result is the full output of a lease computation. All monetary values
// are rounded to 2 decimal places.
type Result struct {
	// Echo of the inputs the result was computed from
	Parameters Parameters `json:"parameters"`

	// Present value of all lease payments (the initial liability and ROU base)
	PresentValue Money `json:"present_value"`

	// Straight-line depreciation charged each period
	DepreciationPerPeriod Money `json:"depreciation_per_period"`

	// Period-by-period liability and ROU movement
	Schedule []ScheduleRow `json:"schedule"`

	// Double-entry journal covering recognition and every period
	Journal []JournalEntry `json:"journal"`

	// Deposit unwind schedule (nil when no deposit)
	Deposit *DepositSchedule `json:"deposit,omitempty"`

	// Lock-in summary (nil when no lock-in)
	LockIn *LockInSummary `json:"lock_in,omitempty"`

	// Aggregates over the schedule
	TotalInterest     Money `json:"total_interest"`
	TotalDepreciation Money `json:"total_depreciation"`
	TotalPayments     Money `json:"total_payments"`

	// Non-nil when the journal failed its balance check.
	// The computation still succeeds; this is a warning.
	Imbalance *Imbalance `json:"imbalance,omitempty"`
}

// Balanced reports whether the journal passed its balance check.
func (r *Result) Balanced() bool { return r.Imbalance == nil }

// Compute runs the full pipeline for the given parameters.
// It returns an error only for invalid parameters; a journal imbalance
// is reported on the Result, not as an error.
func Compute(p Parameters) (*Result, error) {
	// 1. Normalize (validates, derives period count/rate, expands rents)
	n, err := Normalize(p)
	if err != nil {
		return nil, err
	}

	// 2. Present value and straight-line depreciation
	pv := PresentValue(n)
	depreciation := DepreciationPerPeriod(pv, n.PeriodCount)

	// 3. Amortization schedule
	rows := BuildSchedule(n, pv, depreciation)

	// 4. Security deposit unwind
	var deposit *DepositSchedule
	if p.HasDeposit() {
		deposit = BuildDepositSchedule(*p.SecurityDeposit, p.TermYears)
	}

	// 5. Lock-in summary
	lockIn := BuildLockInSummary(p)

	// 6. Journal
	journal := BuildJournal(pv, rows, deposit)

	// 7. Balance check (non-fatal)
	imbalance := CheckBalance(journal)

	// 8. Totals
	return &Result{
		Parameters:            p,
		PresentValue:          pv,
		DepreciationPerPeriod: depreciation,
		Schedule:              rows,
		Journal:               journal,
		Deposit:               deposit,
		LockIn:                lockIn,
		TotalInterest:         TotalInterest(rows),
		TotalDepreciation:     TotalDepreciation(rows),
		TotalPayments:         TotalPayments(rows),
		Imbalance:             imbalance,
	}, nil
}
