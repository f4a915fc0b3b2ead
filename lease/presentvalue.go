/*
presentvalue.go - Initial lease liability / ROU asset measurement

PURPOSE:
  Computes the present value of the lease payments, which becomes both the
  opening lease liability and the opening ROU asset carrying amount. Flat
  rents use the closed-form annuity factor; escalating rents are discounted
  term by term because no closed form exists when rents vary.

SEE ALSO:
  - normalize.go: produces the rent vector and periodic rate
  - schedule.go: rolls the measured value forward
*/
package lease

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// PresentValue measures the initial liability from the normalized inputs.
// The result is rounded to 2 decimals; everything downstream consumes the
// rounded value.
func PresentValue(n *Normalized) Money {
	if n.Escalating {
		return escalatingPresentValue(n)
	}

	payment := n.Rents[0]

	// Zero rate: no discounting, the liability is the plain payment sum.
	if n.ZeroRate() {
		return payment.MulInt(n.PeriodCount).Round()
	}

	// Ordinary annuity factor: (1 - (1+r)^-n) / r.
	onePlusR := one.Add(n.PeriodicRate)
	pow := onePlusR.Pow(decimal.NewFromInt(int64(n.PeriodCount)))
	factor := one.Sub(one.Div(pow)).Div(n.PeriodicRate)

	// Annuity due: payments land at period start, shift the factor by (1+r).
	if n.Timing == TimingBeginningOfPeriod {
		factor = factor.Mul(onePlusR)
	}

	return payment.Mul(factor).Round()
}

// escalatingPresentValue discounts each year's rent individually:
// rent[year] / (1+r)^year for end-of-period timing, exponent year-1 for
// beginning-of-period. Terms accumulate unrounded; only the total rounds.
func escalatingPresentValue(n *Normalized) Money {
	onePlusR := one.Add(n.PeriodicRate)

	sum := decimal.Zero
	for year := 1; year <= n.PeriodCount; year++ {
		exponent := year
		if n.Timing == TimingBeginningOfPeriod {
			exponent = year - 1
		}
		denom := onePlusR.Pow(decimal.NewFromInt(int64(exponent)))
		sum = sum.Add(n.RentAt(year).Value.Div(denom))
	}
	return Money{Value: sum}.Round()
}

// DepreciationPerPeriod is the straight-line charge: round(PV / periods, 2),
// computed once and held constant for every period regardless of the
// liability's declining balance.
func DepreciationPerPeriod(pv Money, periodCount int) Money {
	return pv.DivInt(periodCount).Round()
}
