/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific display fields (period labels, balanced flag)
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

NUMBERS:
  Monetary values cross the API boundary as plain JSON numbers via
  Money.Float64. The engine itself never touches these floats; they are
  produced from already-rounded 2-decimal values purely for display.

TYPES:
  Runs:
    RunDTO, RunSummaryDTO, ScheduleRowDTO, JournalEntryDTO,
    DepositDTO, DepositRowDTO, LockInDTO, ImbalanceDTO

  Compute:
    the request body is factory.LeaseJSON verbatim

  Scenarios:
    ScenarioDTO, LoadScenarioRequest

  Accounts:
    AccountDTO

VALIDATION:
  Validation is done by the engine, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/lease.go: LeaseJSON type
*/
package api

import (
	"time"

	"github.com/meridian/lease-engine/factory"
	"github.com/meridian/lease-engine/lease"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// RunDTO is the full view of one computed run.
type RunDTO struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	CreatedAt string            `json:"created_at"`
	Params    factory.LeaseJSON `json:"params"`

	PresentValue          float64 `json:"present_value"`
	DepreciationPerPeriod float64 `json:"depreciation_per_period"`
	TotalInterest         float64 `json:"total_interest"`
	TotalDepreciation     float64 `json:"total_depreciation"`
	TotalPayments         float64 `json:"total_payments"`

	// Balanced is false only when the journal self-check failed; the run
	// is still returned, Imbalance carries the details.
	Balanced  bool          `json:"balanced"`
	Imbalance *ImbalanceDTO `json:"imbalance,omitempty"`

	Schedule []ScheduleRowDTO  `json:"schedule"`
	Journal  []JournalEntryDTO `json:"journal"`
	Deposit  *DepositDTO       `json:"deposit,omitempty"`
	LockIn   *LockInDTO        `json:"lock_in,omitempty"`
}

// RunSummaryDTO is the listing view of a run.
type RunSummaryDTO struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	PresentValue     float64 `json:"present_value"`
	TermYears        int     `json:"term_years"`
	PaymentFrequency string  `json:"payment_frequency"`
	CreatedAt        string  `json:"created_at"`
}

// ScheduleRowDTO is one period of the roll-forward, with a display label.
type ScheduleRowDTO struct {
	Period           int     `json:"period"`
	Label            string  `json:"label"` // "Year 3", "Month 14"
	OpeningLiability float64 `json:"opening_liability"`
	Interest         float64 `json:"interest"`
	Payment          float64 `json:"payment"`
	ClosingLiability float64 `json:"closing_liability"`
	OpeningROU       float64 `json:"opening_rou"`
	Depreciation     float64 `json:"depreciation"`
	ClosingROU       float64 `json:"closing_rou"`
}

// JournalEntryDTO is one posting line.
type JournalEntryDTO struct {
	Period  int     `json:"period"`
	Label   string  `json:"label"` // "Initial" for period 0
	Account string  `json:"account"`
	Debit   float64 `json:"debit"`
	Credit  float64 `json:"credit"`
}

// DepositDTO is the security-deposit unwind.
type DepositDTO struct {
	Amount             float64         `json:"amount"`
	PresentValue       float64         `json:"present_value"`
	DiscountDifference float64         `json:"discount_difference"`
	Rows               []DepositRowDTO `json:"rows"`
}

// DepositRowDTO is one year of deposit accretion.
type DepositRowDTO struct {
	Year           int     `json:"year"`
	OpeningBalance float64 `json:"opening_balance"`
	InterestIncome float64 `json:"interest_income"`
	ClosingBalance float64 `json:"closing_balance"`
}

// LockInDTO is the non-cancellable commitment summary.
type LockInDTO struct {
	LockInYears        int     `json:"lock_in_years"`
	LockedPeriods      int     `json:"locked_periods"`
	LockedPayments     float64 `json:"locked_payments"`
	RemainingTermYears int     `json:"remaining_term_years"`
}

// ImbalanceDTO reports a failed journal balance self-check.
type ImbalanceDTO struct {
	TotalDebit  float64 `json:"total_debit"`
	TotalCredit float64 `json:"total_credit"`
	Difference  float64 `json:"difference"`
	Tolerance   float64 `json:"tolerance"`
}

// AccountDTO is one entry of the chart of accounts.
type AccountDTO struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ScenarioDTO represents a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest is the request to load a demo scenario.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toRunDTO(f *factory.LeaseFactory, run lease.Run) RunDTO {
	result := run.Result
	frequency := run.Params.PaymentFrequency

	dto := RunDTO{
		ID:        run.ID,
		Name:      run.Name,
		CreatedAt: run.CreatedAt.Format(time.RFC3339),
		Params:    f.ToJSON(run.Name, run.Params),

		PresentValue:          result.PresentValue.Float64(),
		DepreciationPerPeriod: result.DepreciationPerPeriod.Float64(),
		TotalInterest:         result.TotalInterest.Float64(),
		TotalDepreciation:     result.TotalDepreciation.Float64(),
		TotalPayments:         result.TotalPayments.Float64(),

		Balanced: result.Balanced(),
		Schedule: toScheduleRowDTOs(frequency, result.Schedule),
		Journal:  toJournalEntryDTOs(frequency, result.Journal),
	}

	if result.Imbalance != nil {
		dto.Imbalance = &ImbalanceDTO{
			TotalDebit:  result.Imbalance.TotalDebit.Float64(),
			TotalCredit: result.Imbalance.TotalCredit.Float64(),
			Difference:  result.Imbalance.Difference().Float64(),
			Tolerance:   result.Imbalance.Tolerance.Float64(),
		}
	}
	if result.Deposit != nil {
		dto.Deposit = toDepositDTO(result.Deposit)
	}
	if result.LockIn != nil {
		dto.LockIn = &LockInDTO{
			LockInYears:        result.LockIn.LockInYears,
			LockedPeriods:      result.LockIn.LockedPeriods,
			LockedPayments:     result.LockIn.LockedPayments.Float64(),
			RemainingTermYears: result.LockIn.RemainingTermYears,
		}
	}

	return dto
}

func toScheduleRowDTOs(frequency lease.PaymentFrequency, rows []lease.ScheduleRow) []ScheduleRowDTO {
	dtos := make([]ScheduleRowDTO, len(rows))
	for i, row := range rows {
		dtos[i] = ScheduleRowDTO{
			Period:           row.Period,
			Label:            lease.PeriodName(frequency, row.Period),
			OpeningLiability: row.OpeningLiability.Float64(),
			Interest:         row.Interest.Float64(),
			Payment:          row.Payment.Float64(),
			ClosingLiability: row.ClosingLiability.Float64(),
			OpeningROU:       row.OpeningROU.Float64(),
			Depreciation:     row.Depreciation.Float64(),
			ClosingROU:       row.ClosingROU.Float64(),
		}
	}
	return dtos
}

func toJournalEntryDTOs(frequency lease.PaymentFrequency, entries []lease.JournalEntry) []JournalEntryDTO {
	dtos := make([]JournalEntryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = JournalEntryDTO{
			Period:  entry.Period,
			Label:   journalLabel(frequency, entry),
			Account: entry.Account,
			Debit:   entry.Debit.Float64(),
			Credit:  entry.Credit.Float64(),
		}
	}
	return dtos
}

// journalLabel names the posting period. Deposit accretion lines run on an
// annual cadence regardless of the lease's payment frequency.
func journalLabel(frequency lease.PaymentFrequency, entry lease.JournalEntry) string {
	switch entry.Account {
	case lease.AccountSecurityDeposit, lease.AccountInterestIncome:
		return lease.PeriodName(lease.FrequencyAnnual, entry.Period)
	default:
		return lease.PeriodName(frequency, entry.Period)
	}
}

func toDepositDTO(deposit *lease.DepositSchedule) *DepositDTO {
	rows := make([]DepositRowDTO, len(deposit.Rows))
	for i, row := range deposit.Rows {
		rows[i] = DepositRowDTO{
			Year:           row.Year,
			OpeningBalance: row.OpeningBalance.Float64(),
			InterestIncome: row.InterestIncome.Float64(),
			ClosingBalance: row.ClosingBalance.Float64(),
		}
	}
	return &DepositDTO{
		Amount:             deposit.Amount.Float64(),
		PresentValue:       deposit.PresentValue.Float64(),
		DiscountDifference: deposit.DiscountDifference.Float64(),
		Rows:               rows,
	}
}

func toRunSummaryDTO(summary lease.RunSummary) RunSummaryDTO {
	frequency := summary.PaymentFrequency
	if frequency == "" {
		frequency = lease.FrequencyAnnual
	}
	return RunSummaryDTO{
		ID:               summary.ID,
		Name:             summary.Name,
		PresentValue:     summary.PresentValue.Float64(),
		TermYears:        summary.TermYears,
		PaymentFrequency: string(frequency),
		CreatedAt:        summary.CreatedAt.Format(time.RFC3339),
	}
}
