/*
Package lease provides the IFRS 16 lease amortization engine.

PURPOSE:
  This package turns a small set of lease parameters (payment, discount
  rate, term, optional modifiers) into a self-consistent, balanced set of
  output tables: the liability/ROU roll-forward schedule, the double-entry
  journal postings, and the optional security-deposit unwind.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A monetary amount backed by decimal.Decimal
  - Parameters: The immutable input aggregate for one computation run
  - PaymentFrequency / PaymentTiming / EscalationFrequency: input enums
  - Escalation / SecurityDeposit: optional feature configuration

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal everywhere, never float math
  2. Round-per-step: every computed amount is rounded to 2 decimals at the
     point of computation, and later steps consume the rounded value
  3. Purity: Compute(params) builds fresh immutable tables, no ambient state
  4. Validation first: bad parameters are rejected before anything computes

USAGE:
  params := lease.Parameters{
      PaymentAmount:             lease.NewMoney(50000),
      AnnualDiscountRatePercent: 9,
      TermYears:                 8,
  }
  result, err := lease.Compute(params)

SEE ALSO:
  - normalize.go: parameter normalization and rent-vector construction
  - presentvalue.go: initial liability / ROU measurement
  - schedule.go: period-by-period roll-forward
  - journal.go: double-entry postings and the balance self-check
*/
package lease

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Monetary amount (single implicit currency)
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

// roundPlaces is the scale every computed amount is rounded to.
const roundPlaces = 2

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

// MustParseMoney parses a decimal string, panicking on malformed input.
// Use only for literals and values the engine itself wrote.
func MustParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("lease: unparsable money value: " + s)
	}
	return Money{Value: d}
}

func (m Money) Add(b Money) Money           { return Money{Value: m.Value.Add(b.Value)} }
func (m Money) Sub(b Money) Money           { return Money{Value: m.Value.Sub(b.Value)} }
func (m Money) Neg() Money                  { return Money{Value: m.Value.Neg()} }
func (m Money) Mul(s decimal.Decimal) Money { return Money{Value: m.Value.Mul(s)} }
func (m Money) Div(s decimal.Decimal) Money { return Money{Value: m.Value.Div(s)} }
func (m Money) MulInt(n int) Money          { return m.Mul(decimal.NewFromInt(int64(n))) }
func (m Money) DivInt(n int) Money          { return m.Div(decimal.NewFromInt(int64(n))) }
func (m Money) Round() Money                { return Money{Value: m.Value.Round(roundPlaces)} }
func (m Money) Abs() Money                  { return Money{Value: m.Value.Abs()} }
func (m Money) IsZero() bool                { return m.Value.IsZero() }
func (m Money) IsNegative() bool            { return m.Value.IsNegative() }
func (m Money) IsPositive() bool            { return m.Value.IsPositive() }
func (m Money) Equal(b Money) bool          { return m.Value.Equal(b.Value) }
func (m Money) GreaterThan(b Money) bool    { return m.Value.GreaterThan(b.Value) }
func (m Money) LessThan(b Money) bool       { return m.Value.LessThan(b.Value) }

// Float64 is for DTO/export boundaries only; engine math stays decimal.
func (m Money) Float64() float64 {
	f, _ := m.Value.Float64()
	return f
}

// StringFixed renders with exactly two decimal places.
func (m Money) StringFixed() string { return m.Value.StringFixed(roundPlaces) }

func (m Money) MarshalJSON() ([]byte, error)  { return m.Value.MarshalJSON() }
func (m *Money) UnmarshalJSON(b []byte) error { return m.Value.UnmarshalJSON(b) }

// =============================================================================
// INPUT ENUMS
// =============================================================================

type PaymentFrequency string

const (
	FrequencyAnnual  PaymentFrequency = "annual"
	FrequencyMonthly PaymentFrequency = "monthly"
)

type PaymentTiming string

const (
	TimingEndOfPeriod       PaymentTiming = "end_of_period"
	TimingBeginningOfPeriod PaymentTiming = "beginning_of_period"
)

type EscalationFrequency string

const (
	EscalateEveryYear   EscalationFrequency = "every_year"
	EscalateEvery2Years EscalationFrequency = "every_2_years"
	EscalateEvery3Years EscalationFrequency = "every_3_years"
)

// IntervalYears returns the number of years between escalation steps,
// or 0 for an unknown frequency.
func (f EscalationFrequency) IntervalYears() int {
	switch f {
	case EscalateEveryYear:
		return 1
	case EscalateEvery2Years:
		return 2
	case EscalateEvery3Years:
		return 3
	default:
		return 0
	}
}

// =============================================================================
// OPTIONAL FEATURE CONFIGURATION
// =============================================================================

// Escalation steps the rent up at fixed year intervals. Escalation is
// evaluated on calendar years, so it is only valid with annual frequency.
type Escalation struct {
	RatePercent     float64             `json:"rate_percent"`
	Frequency       EscalationFrequency `json:"frequency"`
	StartAfterYears int                 `json:"start_after_years"`
}

// SecurityDeposit is a refundable deposit recognized at its discounted
// present value, unwinding to par as interest income over the term.
type SecurityDeposit struct {
	Amount            Money   `json:"amount"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
}

// =============================================================================
// PARAMETERS - Input aggregate for one computation run
// =============================================================================

// Parameters is the full input for one run. PaymentAmount is the per-period
// payment, or the base rent when escalation is configured. Zero-value
// frequency/timing default to annual / end of period.
type Parameters struct {
	PaymentAmount             Money            `json:"payment_amount"`
	AnnualDiscountRatePercent float64          `json:"discount_rate_percent"`
	TermYears                 int              `json:"term_years"`
	PaymentFrequency          PaymentFrequency `json:"payment_frequency"`
	PaymentTiming             PaymentTiming    `json:"payment_timing"`
	Escalation                *Escalation      `json:"escalation,omitempty"`
	SecurityDeposit           *SecurityDeposit `json:"security_deposit,omitempty"`
	LockInYears               int              `json:"lock_in_years,omitempty"`
}

// Validate rejects bad inputs before any computation runs.
// All violations surface as InvalidParameterError.
func (p Parameters) Validate() error {
	if p.PaymentAmount.IsNegative() {
		return &InvalidParameterError{Field: "payment_amount", Reason: "must not be negative"}
	}
	if p.AnnualDiscountRatePercent < 0 {
		return &InvalidParameterError{Field: "discount_rate_percent", Reason: "must not be negative"}
	}
	if p.TermYears < 1 {
		return &InvalidParameterError{Field: "term_years", Reason: "must be at least 1"}
	}
	switch p.PaymentFrequency {
	case FrequencyAnnual, FrequencyMonthly, "":
	default:
		return &InvalidParameterError{Field: "payment_frequency", Reason: "unknown frequency"}
	}
	switch p.PaymentTiming {
	case TimingEndOfPeriod, TimingBeginningOfPeriod, "":
	default:
		return &InvalidParameterError{Field: "payment_timing", Reason: "unknown timing"}
	}
	if e := p.Escalation; e != nil {
		if p.PaymentFrequency == FrequencyMonthly {
			return &InvalidParameterError{Field: "escalation", Reason: "escalation requires annual payment frequency"}
		}
		if e.RatePercent < 0 {
			return &InvalidParameterError{Field: "escalation.rate_percent", Reason: "must not be negative"}
		}
		if e.Frequency.IntervalYears() == 0 {
			return &InvalidParameterError{Field: "escalation.frequency", Reason: "unknown escalation frequency"}
		}
		if e.StartAfterYears < 0 || e.StartAfterYears > p.TermYears {
			return &InvalidParameterError{Field: "escalation.start_after_years", Reason: "must be within [0, term_years]"}
		}
	}
	if d := p.SecurityDeposit; d != nil {
		if d.Amount.IsNegative() {
			return &InvalidParameterError{Field: "security_deposit.amount", Reason: "must not be negative"}
		}
		if d.AnnualRatePercent < 0 {
			return &InvalidParameterError{Field: "security_deposit.annual_rate_percent", Reason: "must not be negative"}
		}
	}
	if p.LockInYears < 0 || p.LockInYears > p.TermYears {
		return &InvalidParameterError{Field: "lock_in_years", Reason: "must be within [0, term_years]"}
	}
	return nil
}

// HasEscalation reports whether the run uses the escalating-rent mode.
func (p Parameters) HasEscalation() bool { return p.Escalation != nil }

// HasDeposit reports whether the deposit discounter will run.
func (p Parameters) HasDeposit() bool {
	return p.SecurityDeposit != nil && p.SecurityDeposit.Amount.IsPositive()
}
