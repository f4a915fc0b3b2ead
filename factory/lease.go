/*
Package factory provides JSON to Go lease parameter conversion.

PURPOSE:
  Converts JSON lease definitions into lease.Parameters. This enables lease
  configuration without code changes - accountants can define leases in
  JSON, and the factory creates the proper Go structs for the engine.

WHY JSON?
  - Non-developers can describe a lease contract
  - Easy integration with an admin UI or HTTP API
  - Version control for lease definitions
  - Database storage of run inputs

JSON SCHEMA:
  {
    "name": "Head Office Lease",
    "payment_amount": 50000,
    "discount_rate_percent": 9,
    "term_years": 8,
    "payment_frequency": "annual",
    "payment_timing": "end_of_period",
    "escalation": {
      "rate_percent": 5,
      "frequency": "every_year",
      "start_after_years": 1
    },
    "security_deposit": {
      "amount": 100000,
      "annual_rate_percent": 8
    },
    "lock_in_years": 3
  }

KEY FEATURES:
  - Sets sensible defaults (annual frequency, end-of-period timing)
  - Rejects unknown enum values instead of guessing
  - Round-trips Parameters back to JSON for API echoes
  - Amounts travel as plain JSON numbers; the engine converts to decimal

USAGE:
  factory := NewLeaseFactory()

  // From JSON string
  params, err := factory.ParseLease(jsonString)

  // From a canned preset (recommended for demos)
  jsonStr := factory.StandardOfficeJSON("Head Office", 50000, 9, 8)
  params, err := factory.ParseLease(jsonStr)

  // Run the engine
  result, err := lease.Compute(params)

SEE ALSO:
  - lease/types.go: Parameters type definition and validation
  - factory/presets.go: canned lease definitions for demo scenarios
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/meridian/lease-engine/lease"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// LeaseJSON is the JSON representation of one lease's input parameters.
// Amounts are plain JSON numbers; the factory converts them to decimal-backed
// Money so no float ever enters the engine's arithmetic.
type LeaseJSON struct {
	Name                string               `json:"name,omitempty"`
	PaymentAmount       float64              `json:"payment_amount"`
	DiscountRatePercent float64              `json:"discount_rate_percent"`
	TermYears           int                  `json:"term_years"`
	PaymentFrequency    string               `json:"payment_frequency,omitempty"` // annual, monthly
	PaymentTiming       string               `json:"payment_timing,omitempty"`    // end_of_period, beginning_of_period
	Escalation          *EscalationJSON      `json:"escalation,omitempty"`
	SecurityDeposit     *SecurityDepositJSON `json:"security_deposit,omitempty"`
	LockInYears         int                  `json:"lock_in_years,omitempty"`
}

// EscalationJSON represents rent escalation configuration.
type EscalationJSON struct {
	RatePercent     float64 `json:"rate_percent"`
	Frequency       string  `json:"frequency,omitempty"` // every_year, every_2_years, every_3_years
	StartAfterYears int     `json:"start_after_years"`
}

// SecurityDepositJSON represents a refundable security deposit.
type SecurityDepositJSON struct {
	Amount            float64 `json:"amount"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
}

// =============================================================================
// LEASE FACTORY
// =============================================================================

// LeaseFactory converts JSON lease definitions to lease.Parameters.
type LeaseFactory struct{}

// NewLeaseFactory creates a new lease factory.
func NewLeaseFactory() *LeaseFactory {
	return &LeaseFactory{}
}

// ParseLease parses a JSON string into lease.Parameters.
func (f *LeaseFactory) ParseLease(jsonStr string) (lease.Parameters, error) {
	var lj LeaseJSON
	if err := json.Unmarshal([]byte(jsonStr), &lj); err != nil {
		return lease.Parameters{}, fmt.Errorf("failed to parse lease JSON: %w", err)
	}

	return f.FromJSON(lj)
}

// FromJSON converts LeaseJSON to lease.Parameters. Empty enum strings take
// the engine defaults (annual, end of period); unknown strings are rejected.
// Full numeric validation happens inside lease.Compute.
func (f *LeaseFactory) FromJSON(lj LeaseJSON) (lease.Parameters, error) {
	frequency, err := parsePaymentFrequency(lj.PaymentFrequency)
	if err != nil {
		return lease.Parameters{}, err
	}
	timing, err := parsePaymentTiming(lj.PaymentTiming)
	if err != nil {
		return lease.Parameters{}, err
	}

	params := lease.Parameters{
		PaymentAmount:             lease.NewMoney(lj.PaymentAmount),
		AnnualDiscountRatePercent: lj.DiscountRatePercent,
		TermYears:                 lj.TermYears,
		PaymentFrequency:          frequency,
		PaymentTiming:             timing,
		LockInYears:               lj.LockInYears,
	}

	if lj.Escalation != nil {
		escFrequency, err := parseEscalationFrequency(lj.Escalation.Frequency)
		if err != nil {
			return lease.Parameters{}, err
		}
		params.Escalation = &lease.Escalation{
			RatePercent:     lj.Escalation.RatePercent,
			Frequency:       escFrequency,
			StartAfterYears: lj.Escalation.StartAfterYears,
		}
	}

	if lj.SecurityDeposit != nil {
		params.SecurityDeposit = &lease.SecurityDeposit{
			Amount:            lease.NewMoney(lj.SecurityDeposit.Amount),
			AnnualRatePercent: lj.SecurityDeposit.AnnualRatePercent,
		}
	}

	return params, nil
}

// ToJSON converts lease.Parameters back to LeaseJSON.
func (f *LeaseFactory) ToJSON(name string, p lease.Parameters) LeaseJSON {
	lj := LeaseJSON{
		Name:                name,
		PaymentAmount:       p.PaymentAmount.Float64(),
		DiscountRatePercent: p.AnnualDiscountRatePercent,
		TermYears:           p.TermYears,
		PaymentFrequency:    string(p.PaymentFrequency),
		PaymentTiming:       string(p.PaymentTiming),
		LockInYears:         p.LockInYears,
	}

	if p.Escalation != nil {
		lj.Escalation = &EscalationJSON{
			RatePercent:     p.Escalation.RatePercent,
			Frequency:       string(p.Escalation.Frequency),
			StartAfterYears: p.Escalation.StartAfterYears,
		}
	}

	if p.SecurityDeposit != nil {
		lj.SecurityDeposit = &SecurityDepositJSON{
			Amount:            p.SecurityDeposit.Amount.Float64(),
			AnnualRatePercent: p.SecurityDeposit.AnnualRatePercent,
		}
	}

	return lj
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

func parsePaymentFrequency(s string) (lease.PaymentFrequency, error) {
	switch s {
	case "", "annual":
		return lease.FrequencyAnnual, nil
	case "monthly":
		return lease.FrequencyMonthly, nil
	default:
		return "", &lease.InvalidParameterError{
			Field:  "payment_frequency",
			Reason: fmt.Sprintf("unknown frequency %q (want annual or monthly)", s),
		}
	}
}

func parsePaymentTiming(s string) (lease.PaymentTiming, error) {
	switch s {
	case "", "end_of_period":
		return lease.TimingEndOfPeriod, nil
	case "beginning_of_period":
		return lease.TimingBeginningOfPeriod, nil
	default:
		return "", &lease.InvalidParameterError{
			Field:  "payment_timing",
			Reason: fmt.Sprintf("unknown timing %q (want end_of_period or beginning_of_period)", s),
		}
	}
}

func parseEscalationFrequency(s string) (lease.EscalationFrequency, error) {
	switch s {
	case "", "every_year":
		return lease.EscalateEveryYear, nil
	case "every_2_years":
		return lease.EscalateEvery2Years, nil
	case "every_3_years":
		return lease.EscalateEvery3Years, nil
	default:
		return "", &lease.InvalidParameterError{
			Field:  "escalation.frequency",
			Reason: fmt.Sprintf("unknown escalation frequency %q", s),
		}
	}
}
