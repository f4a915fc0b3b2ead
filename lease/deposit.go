/*
deposit.go - Refundable security deposit discounting and unwind

PURPOSE:
  A refundable deposit is recognized at its discounted present value; the
  discount is treated as additional right-of-use cost. The discount then
  unwinds year by year as interest income, compounding the carrying value
  back to the nominal deposit by lease end (unwind-to-par).

  The deposit runs on its own annual cadence and its own rate, independent
  of the payment frequency of the lease itself.

SEE ALSO:
  - journal.go: merges the recognition and accretion lines into the stream
*/
package lease

import "github.com/shopspring/decimal"

// DepositRow is one year of the deposit unwind.
type DepositRow struct {
	Year           int   `json:"year"`
	OpeningBalance Money `json:"opening_balance"`
	InterestIncome Money `json:"interest_income"`
	ClosingBalance Money `json:"closing_balance"`
}

// DepositSchedule is the parallel ledger for a discounted security deposit.
type DepositSchedule struct {
	Amount             Money        `json:"amount"` // nominal (par) value
	PresentValue       Money        `json:"present_value"`
	DiscountDifference Money        `json:"discount_difference"`
	Rows               []DepositRow `json:"rows"`
}

// BuildDepositSchedule discounts the deposit over the full term and
// amortizes the unwind. Callers skip it entirely when no positive deposit
// is configured.
func BuildDepositSchedule(d SecurityDeposit, termYears int) *DepositSchedule {
	amount := d.Amount.Round()
	rate := decimal.NewFromFloat(d.AnnualRatePercent).Div(hundred)

	// pv = deposit / (1+r)^term, rounded once.
	pow := one.Add(rate).Pow(decimal.NewFromInt(int64(termYears)))
	pv := amount.Div(pow).Round()
	diff := amount.Sub(pv)

	rows := make([]DepositRow, 0, termYears)
	opening := pv
	for year := 1; year <= termYears; year++ {
		interestIncome := opening.Mul(rate).Round()
		closing := opening.Add(interestIncome).Round()
		rows = append(rows, DepositRow{
			Year:           year,
			OpeningBalance: opening,
			InterestIncome: interestIncome,
			ClosingBalance: closing,
		})
		opening = closing
	}

	return &DepositSchedule{
		Amount:             amount,
		PresentValue:       pv,
		DiscountDifference: diff,
		Rows:               rows,
	}
}
