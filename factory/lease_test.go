package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian/lease-engine/factory"
	"github.com/meridian/lease-engine/lease"
)

// =============================================================================
// PARSING AND DEFAULTS
// =============================================================================

func TestParseLease_MinimalDefinition_AppliesDefaults(t *testing.T) {
	// GIVEN: JSON with only the three required numbers
	// WHEN: Parsed
	// THEN: Frequency defaults to annual, timing to end-of-period

	f := factory.NewLeaseFactory()

	params, err := f.ParseLease(`{
		"payment_amount": 50000,
		"discount_rate_percent": 9,
		"term_years": 8
	}`)
	require.NoError(t, err)

	assert.True(t, params.PaymentAmount.Equal(lease.NewMoney(50000)))
	assert.Equal(t, 9.0, params.AnnualDiscountRatePercent)
	assert.Equal(t, 8, params.TermYears)
	assert.Equal(t, lease.FrequencyAnnual, params.PaymentFrequency)
	assert.Equal(t, lease.TimingEndOfPeriod, params.PaymentTiming)
	assert.Nil(t, params.Escalation)
	assert.Nil(t, params.SecurityDeposit)
	assert.Equal(t, 0, params.LockInYears)
}

func TestParseLease_FullDefinition_AllFieldsCarried(t *testing.T) {
	// GIVEN: JSON exercising every optional feature
	// WHEN: Parsed
	// THEN: All fields land on Parameters unchanged

	f := factory.NewLeaseFactory()

	params, err := f.ParseLease(`{
		"name": "Flagship Store",
		"payment_amount": 120000,
		"discount_rate_percent": 8,
		"term_years": 6,
		"payment_frequency": "annual",
		"payment_timing": "beginning_of_period",
		"escalation": {
			"rate_percent": 5,
			"frequency": "every_2_years",
			"start_after_years": 1
		},
		"security_deposit": {
			"amount": 100000,
			"annual_rate_percent": 8
		},
		"lock_in_years": 3
	}`)
	require.NoError(t, err)

	assert.Equal(t, lease.TimingBeginningOfPeriod, params.PaymentTiming)
	require.NotNil(t, params.Escalation)
	assert.Equal(t, 5.0, params.Escalation.RatePercent)
	assert.Equal(t, lease.EscalateEvery2Years, params.Escalation.Frequency)
	assert.Equal(t, 1, params.Escalation.StartAfterYears)
	require.NotNil(t, params.SecurityDeposit)
	assert.True(t, params.SecurityDeposit.Amount.Equal(lease.NewMoney(100000)))
	assert.Equal(t, 8.0, params.SecurityDeposit.AnnualRatePercent)
	assert.Equal(t, 3, params.LockInYears)
}

func TestParseLease_MalformedJSON_Rejected(t *testing.T) {
	f := factory.NewLeaseFactory()

	_, err := f.ParseLease(`{"payment_amount": `)
	assert.Error(t, err)
}

// =============================================================================
// STRICT ENUM PARSING
// =============================================================================

func TestParseLease_UnknownEnums_Rejected(t *testing.T) {
	// GIVEN: Definitions with misspelled enum values
	// WHEN: Parsed
	// THEN: Rejected as an invalid parameter naming the offending field

	f := factory.NewLeaseFactory()

	cases := []struct {
		name  string
		json  string
		field string
	}{
		{
			name:  "frequency",
			json:  `{"payment_amount": 1000, "discount_rate_percent": 5, "term_years": 3, "payment_frequency": "weekly"}`,
			field: "payment_frequency",
		},
		{
			name:  "timing",
			json:  `{"payment_amount": 1000, "discount_rate_percent": 5, "term_years": 3, "payment_timing": "mid_period"}`,
			field: "payment_timing",
		},
		{
			name:  "escalation frequency",
			json:  `{"payment_amount": 1000, "discount_rate_percent": 5, "term_years": 3, "escalation": {"rate_percent": 5, "frequency": "every_5_years"}}`,
			field: "escalation.frequency",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.ParseLease(tc.json)
			require.Error(t, err)
			assert.True(t, lease.IsInvalidParameter(err))

			var paramErr *lease.InvalidParameterError
			require.ErrorAs(t, err, &paramErr)
			assert.Equal(t, tc.field, paramErr.Field)
		})
	}
}

// =============================================================================
// ROUND-TRIP
// =============================================================================

func TestToJSON_RoundTrip_PreservesParameters(t *testing.T) {
	// GIVEN: Fully-populated parameters
	// WHEN: Converted to JSON and back
	// THEN: The reconstructed parameters are equivalent

	f := factory.NewLeaseFactory()

	original := lease.Parameters{
		PaymentAmount:             lease.NewMoney(80000),
		AnnualDiscountRatePercent: 8.5,
		TermYears:                 10,
		PaymentFrequency:          lease.FrequencyAnnual,
		PaymentTiming:             lease.TimingBeginningOfPeriod,
		Escalation: &lease.Escalation{
			RatePercent:     3,
			Frequency:       lease.EscalateEvery3Years,
			StartAfterYears: 2,
		},
		SecurityDeposit: &lease.SecurityDeposit{
			Amount:            lease.NewMoney(50000),
			AnnualRatePercent: 6,
		},
		LockInYears: 3,
	}

	lj := f.ToJSON("Round Trip", original)
	assert.Equal(t, "Round Trip", lj.Name)

	restored, err := f.FromJSON(lj)
	require.NoError(t, err)

	assert.True(t, restored.PaymentAmount.Equal(original.PaymentAmount))
	assert.Equal(t, original.AnnualDiscountRatePercent, restored.AnnualDiscountRatePercent)
	assert.Equal(t, original.TermYears, restored.TermYears)
	assert.Equal(t, original.PaymentFrequency, restored.PaymentFrequency)
	assert.Equal(t, original.PaymentTiming, restored.PaymentTiming)
	require.NotNil(t, restored.Escalation)
	assert.Equal(t, *original.Escalation, *restored.Escalation)
	require.NotNil(t, restored.SecurityDeposit)
	assert.True(t, restored.SecurityDeposit.Amount.Equal(original.SecurityDeposit.Amount))
	assert.Equal(t, original.LockInYears, restored.LockInYears)
}

// =============================================================================
// PRESETS
// =============================================================================

func TestPresets_AllParseAndCompute(t *testing.T) {
	// GIVEN: The canned preset catalog
	// WHEN: Each definition is parsed and run through the engine
	// THEN: Every run succeeds, balances, and measures the expected liability

	f := factory.NewLeaseFactory()

	expectedPV := map[string]string{
		"standard-office":     "276740.96",
		"monthly-equipment":   "80726.87",
		"escalating-retail":   "622049.72",
		"deposited-warehouse": "233379.08",
		"locked-facility":     "569525.01",
	}

	presets := factory.Presets()
	require.Len(t, presets, len(expectedPV))

	for _, preset := range presets {
		t.Run(preset.ID, func(t *testing.T) {
			params, err := f.ParseLease(preset.JSON)
			require.NoError(t, err)

			result, err := lease.Compute(params)
			require.NoError(t, err)

			assert.True(t, result.Balanced(), "preset journal should balance")
			assert.Equal(t, expectedPV[preset.ID], result.PresentValue.StringFixed())
		})
	}
}

func TestPresets_FeatureCoverage(t *testing.T) {
	// Each engine feature should be exercised by at least one preset.

	f := factory.NewLeaseFactory()

	byID := map[string]lease.Parameters{}
	for _, preset := range factory.Presets() {
		params, err := f.ParseLease(preset.JSON)
		require.NoError(t, err)
		byID[preset.ID] = params
	}

	assert.Equal(t, lease.FrequencyMonthly, byID["monthly-equipment"].PaymentFrequency)
	assert.NotNil(t, byID["escalating-retail"].Escalation)
	assert.NotNil(t, byID["deposited-warehouse"].SecurityDeposit)
	assert.Equal(t, lease.TimingBeginningOfPeriod, byID["locked-facility"].PaymentTiming)
	assert.Equal(t, 3, byID["locked-facility"].LockInYears)
}

func TestPresetByID(t *testing.T) {
	preset, ok := factory.PresetByID("standard-office")
	require.True(t, ok)
	assert.Equal(t, "Standard Office Lease", preset.Name)

	_, ok = factory.PresetByID("no-such-preset")
	assert.False(t, ok)
}
