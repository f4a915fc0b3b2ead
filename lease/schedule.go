/*
schedule.go - Liability / ROU roll-forward state machine

PURPOSE:
  Rolls the lease liability and the ROU asset forward one period at a time
  and records one immutable row per period. This is the heart of the
  engine: every amount is rounded to 2 decimals at the step that computes
  it, and the next step consumes the rounded value, so rounding drift
  compounds period over period exactly as a reference schedule would.

TIMING VARIANTS:
  End of period:        interest accrues on the opening balance, then the
                        payment lands.
  Beginning of period:  the payment lands first, interest accrues on the
                        post-payment balance. The row still reports the
                        pre-payment balance as its opening liability, so
                        each row's opening equals the previous row's
                        closing.

TERMINATION:
  The loop always runs exactly PeriodCount times. The terminal liability
  is not forced to zero; for non-escalating, fully amortizing inputs it
  lands within rounding of zero, and tests pin that property.

SEE ALSO:
  - presentvalue.go: supplies the opening carrying amount
  - journal.go: derives postings from these rows
*/
package lease

// ScheduleRow is one period of the lease schedule. Periods are 1-based.
type ScheduleRow struct {
	Period           int   `json:"period"`
	OpeningLiability Money `json:"opening_liability"`
	Interest         Money `json:"interest"`
	Payment          Money `json:"payment"`
	ClosingLiability Money `json:"closing_liability"`
	OpeningROU       Money `json:"opening_rou"`
	Depreciation     Money `json:"depreciation"`
	ClosingROU       Money `json:"closing_rou"`
}

// BuildSchedule steps the liability and ROU state once per period and
// returns the full schedule. pv seeds both opening balances; depreciation
// is the constant straight-line charge.
func BuildSchedule(n *Normalized, pv, depreciation Money) []ScheduleRow {
	rows := make([]ScheduleRow, 0, n.PeriodCount)

	openingLiability := pv
	openingROU := pv

	for period := 1; period <= n.PeriodCount; period++ {
		rent := n.RentAt(period)

		var interest, closingLiability Money
		switch n.Timing {
		case TimingBeginningOfPeriod:
			// Payment is deducted before interest accrues.
			afterPayment := openingLiability.Sub(rent).Round()
			interest = afterPayment.Mul(n.PeriodicRate).Round()
			closingLiability = afterPayment.Add(interest).Round()
		default:
			interest = openingLiability.Mul(n.PeriodicRate).Round()
			closingLiability = openingLiability.Add(interest).Sub(rent).Round()
		}

		closingROU := openingROU.Sub(depreciation).Round()

		rows = append(rows, ScheduleRow{
			Period:           period,
			OpeningLiability: openingLiability,
			Interest:         interest,
			Payment:          rent,
			ClosingLiability: closingLiability,
			OpeningROU:       openingROU,
			Depreciation:     depreciation,
			ClosingROU:       closingROU,
		})

		openingLiability = closingLiability
		openingROU = closingROU
	}

	return rows
}

// TotalInterest sums the interest column. Row values are already rounded,
// so the sum is exact at 2 decimals.
func TotalInterest(rows []ScheduleRow) Money {
	total := Money{}
	for _, row := range rows {
		total = total.Add(row.Interest)
	}
	return total
}

// TotalDepreciation sums the depreciation column.
func TotalDepreciation(rows []ScheduleRow) Money {
	total := Money{}
	for _, row := range rows {
		total = total.Add(row.Depreciation)
	}
	return total
}

// TotalPayments sums the payment column.
func TotalPayments(rows []ScheduleRow) Money {
	total := Money{}
	for _, row := range rows {
		total = total.Add(row.Payment)
	}
	return total
}
