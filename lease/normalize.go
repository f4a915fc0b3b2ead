package lease

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// NORMALIZED LEASE - Engine-ready per-period values
// =============================================================================

// Normalized carries the per-period values the calculators run on:
// the period count, the periodic discount rate (a plain decimal fraction,
// not a percent), and the rent vector. Built once per run, never mutated.
type Normalized struct {
	PeriodCount    int
	PeriodicRate   decimal.Decimal
	Rents          []Money
	Timing         PaymentTiming
	Frequency      PaymentFrequency
	PeriodsPerYear int
	Escalating     bool
}

// RentAt returns the rent for a 1-based period index.
func (n *Normalized) RentAt(period int) Money { return n.Rents[period-1] }

// ZeroRate reports whether discounting is a no-op for this run.
func (n *Normalized) ZeroRate() bool { return n.PeriodicRate.IsZero() }

var hundred = decimal.NewFromInt(100)

// =============================================================================
// NORMALIZER
// =============================================================================

// Normalize validates the parameters and converts UI-style inputs
// (percentages, year/month toggles, escalation settings) into engine-ready
// per-period values. The engine supports two mutually exclusive modes:
// flat rent at annual or monthly frequency, or escalating rent at annual
// frequency.
func Normalize(p Parameters) (*Normalized, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	frequency := p.PaymentFrequency
	if frequency == "" {
		frequency = FrequencyAnnual
	}
	timing := p.PaymentTiming
	if timing == "" {
		timing = TimingEndOfPeriod
	}

	perYear := PeriodsPerYear(frequency)
	periodCount := PeriodCountFor(p.TermYears, frequency)
	if periodCount <= 0 {
		return nil, &InvalidParameterError{Field: "term_years", Reason: "period count must be positive"}
	}

	// Periodic rate: annual percent / 100, further / 12 when monthly.
	rate := decimal.NewFromFloat(p.AnnualDiscountRatePercent).Div(hundred)
	if frequency == FrequencyMonthly {
		rate = rate.Div(decimal.NewFromInt(MonthsPerYear))
	}

	var rents []Money
	if p.HasEscalation() {
		rents = escalatedRents(p.PaymentAmount, *p.Escalation, p.TermYears)
	} else {
		rents = flatRents(p.PaymentAmount, periodCount)
	}

	return &Normalized{
		PeriodCount:    periodCount,
		PeriodicRate:   rate,
		Rents:          rents,
		Timing:         timing,
		Frequency:      frequency,
		PeriodsPerYear: perYear,
		Escalating:     p.HasEscalation(),
	}, nil
}

func flatRents(payment Money, periodCount int) []Money {
	payment = payment.Round()
	rents := make([]Money, periodCount)
	for i := range rents {
		rents[i] = payment
	}
	return rents
}

// escalatedRents builds the annual rent vector. The step-up is applied to
// the running rent BEFORE recording a year's value, whenever the year is
// past the start offset and lands on the interval grid. The recorded value
// is rounded, and the rounded value is what later steps multiply.
func escalatedRents(baseRent Money, esc Escalation, termYears int) []Money {
	interval := esc.Frequency.IntervalYears()
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(esc.RatePercent).Div(hundred))

	rents := make([]Money, 0, termYears)
	running := baseRent.Round()
	for year := 1; year <= termYears; year++ {
		if year > esc.StartAfterYears && (year-esc.StartAfterYears-1)%interval == 0 {
			running = running.Mul(factor).Round()
		}
		rents = append(rents, running)
	}
	return rents
}
