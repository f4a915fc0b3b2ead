package lease

// LockInSummary is a derived metric: it never feeds back into the
// amortization state.
type LockInSummary struct {
	LockInYears        int   `json:"lock_in_years"`
	LockedPeriods      int   `json:"locked_periods"`
	LockedPayments     Money `json:"locked_payments"`
	RemainingTermYears int   `json:"remaining_term_years"`
}

// BuildLockInSummary reports the committed portion of the lease. Returns
// nil when no lock-in is configured. Locked payments use the base payment
// amount even for escalating leases.
func BuildLockInSummary(p Parameters) *LockInSummary {
	if p.LockInYears <= 0 {
		return nil
	}
	lockedPeriods := p.LockInYears * PeriodsPerYear(p.PaymentFrequency)
	return &LockInSummary{
		LockInYears:        p.LockInYears,
		LockedPeriods:      lockedPeriods,
		LockedPayments:     p.PaymentAmount.MulInt(lockedPeriods).Round(),
		RemainingTermYears: p.TermYears - p.LockInYears,
	}
}
