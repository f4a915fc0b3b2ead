/*
Preset lease definitions.

These functions build JSON lease definitions for common contract shapes
(flat office lease, monthly equipment rental, escalating retail rent, ...).
They construct JSON strings directly so callers can feed them straight into
ParseLease, store them, or hand them to an HTTP client as a request body.

USAGE:

	factory := NewLeaseFactory()
	jsonStr := StandardOfficeJSON("Head Office", 50000, 9, 8)
	params, err := factory.ParseLease(jsonStr)

The Presets catalog pairs each builder with canonical demo numbers; the API
scenario endpoints and the CLI both serve from it.
*/
package factory

import (
	"encoding/json"
)

// StandardOfficeJSON returns JSON for a flat annual lease paid in arrears.
func StandardOfficeJSON(name string, annualPayment, ratePercent float64, termYears int) string {
	lj := map[string]interface{}{
		"name":                  name,
		"payment_amount":        annualPayment,
		"discount_rate_percent": ratePercent,
		"term_years":            termYears,
		"payment_frequency":     "annual",
		"payment_timing":        "end_of_period",
	}
	b, _ := json.MarshalIndent(lj, "", "  ")
	return string(b)
}

// MonthlyEquipmentJSON returns JSON for an equipment rental paid monthly.
func MonthlyEquipmentJSON(name string, monthlyPayment, annualRatePercent float64, termYears int) string {
	lj := map[string]interface{}{
		"name":                  name,
		"payment_amount":        monthlyPayment,
		"discount_rate_percent": annualRatePercent,
		"term_years":            termYears,
		"payment_frequency":     "monthly",
		"payment_timing":        "end_of_period",
	}
	b, _ := json.MarshalIndent(lj, "", "  ")
	return string(b)
}

// EscalatingRetailJSON returns JSON for an annual lease whose rent steps up
// by a fixed percentage every year once the holiday expires.
func EscalatingRetailJSON(name string, baseRent, ratePercent, escalationPercent float64, startAfterYears, termYears int) string {
	lj := map[string]interface{}{
		"name":                  name,
		"payment_amount":        baseRent,
		"discount_rate_percent": ratePercent,
		"term_years":            termYears,
		"payment_frequency":     "annual",
		"payment_timing":        "end_of_period",
		"escalation": map[string]interface{}{
			"rate_percent":      escalationPercent,
			"frequency":         "every_year",
			"start_after_years": startAfterYears,
		},
	}
	b, _ := json.MarshalIndent(lj, "", "  ")
	return string(b)
}

// DepositedWarehouseJSON returns JSON for an annual lease with a refundable
// security deposit recognized at discounted present value.
func DepositedWarehouseJSON(name string, annualPayment, ratePercent float64, termYears int, depositAmount, depositRatePercent float64) string {
	lj := map[string]interface{}{
		"name":                  name,
		"payment_amount":        annualPayment,
		"discount_rate_percent": ratePercent,
		"term_years":            termYears,
		"payment_frequency":     "annual",
		"payment_timing":        "end_of_period",
		"security_deposit": map[string]interface{}{
			"amount":              depositAmount,
			"annual_rate_percent": depositRatePercent,
		},
	}
	b, _ := json.MarshalIndent(lj, "", "  ")
	return string(b)
}

// LockedFacilityJSON returns JSON for an annual lease paid in advance with a
// non-cancellable lock-in window.
func LockedFacilityJSON(name string, annualPayment, ratePercent float64, termYears, lockInYears int) string {
	lj := map[string]interface{}{
		"name":                  name,
		"payment_amount":        annualPayment,
		"discount_rate_percent": ratePercent,
		"term_years":            termYears,
		"payment_frequency":     "annual",
		"payment_timing":        "beginning_of_period",
		"lock_in_years":         lockInYears,
	}
	b, _ := json.MarshalIndent(lj, "", "  ")
	return string(b)
}

// =============================================================================
// PRESET CATALOG
// =============================================================================

// Preset couples a ready-to-parse lease definition with its catalog entry.
type Preset struct {
	ID          string
	Name        string
	Description string
	JSON        string
}

// Presets returns the canned demo leases, one per engine feature.
func Presets() []Preset {
	return []Preset{
		{
			ID:          "standard-office",
			Name:        "Standard Office Lease",
			Description: "Flat 50,000/year for 8 years at 9%, paid in arrears. The classic worked example.",
			JSON:        StandardOfficeJSON("Standard Office Lease", 50000, 9, 8),
		},
		{
			ID:          "monthly-equipment",
			Name:        "Monthly Equipment Rental",
			Description: "2,500/month for 3 years at 7.2% annual, discounted at 0.6% per month.",
			JSON:        MonthlyEquipmentJSON("Monthly Equipment Rental", 2500, 7.2, 3),
		},
		{
			ID:          "escalating-retail",
			Name:        "Escalating Retail Lease",
			Description: "120,000 base rent for 6 years at 8%, stepping up 5% every year after year 1.",
			JSON:        EscalatingRetailJSON("Escalating Retail Lease", 120000, 8, 5, 1, 6),
		},
		{
			ID:          "deposited-warehouse",
			Name:        "Deposited Warehouse Lease",
			Description: "60,000/year for 5 years at 9%, plus a refundable 100,000 deposit unwinding at 8%.",
			JSON:        DepositedWarehouseJSON("Deposited Warehouse Lease", 60000, 9, 5, 100000, 8),
		},
		{
			ID:          "locked-facility",
			Name:        "Locked-In Facility Lease",
			Description: "80,000/year for 10 years at 8.5%, paid in advance, locked in for the first 3 years.",
			JSON:        LockedFacilityJSON("Locked-In Facility Lease", 80000, 8.5, 10, 3),
		},
	}
}

// PresetByID finds a preset by its catalog ID.
func PresetByID(id string) (Preset, bool) {
	for _, p := range Presets() {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
