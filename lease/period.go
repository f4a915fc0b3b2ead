package lease

import "fmt"

// =============================================================================
// PERIODS - Index arithmetic for the amortization cadence
// =============================================================================

// MonthsPerYear is the only calendar fact the engine needs. The schedule is
// purely period-indexed; there are no dates.
const MonthsPerYear = 12

// PeriodsPerYear returns how many amortization periods one year holds.
// The zero-value frequency counts as annual.
func PeriodsPerYear(f PaymentFrequency) int {
	if f == FrequencyMonthly {
		return MonthsPerYear
	}
	return 1
}

// PeriodCountFor returns the total number of periods over the term.
func PeriodCountFor(termYears int, f PaymentFrequency) int {
	return termYears * PeriodsPerYear(f)
}

// PeriodUnit names a single period for display: "Year" or "Month".
func PeriodUnit(f PaymentFrequency) string {
	if f == FrequencyMonthly {
		return "Month"
	}
	return "Year"
}

// PeriodName labels a 1-based period index, e.g. "Year 3" or "Month 14".
// Period 0 is the initial-recognition pseudo period.
func PeriodName(f PaymentFrequency, index int) string {
	if index == 0 {
		return "Initial"
	}
	return fmt.Sprintf("%s %d", PeriodUnit(f), index)
}
