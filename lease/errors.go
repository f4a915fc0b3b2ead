/*
errors.go - Centralized error types for the lease engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers (api, cmd) match on sentinels with errors.Is and unwrap the
  structured types with errors.As.

ERROR CATEGORIES:
  1. Parameter errors - bad input, rejected before anything computes
  2. Imbalance - the journal self-check failed; NON-FATAL, results are
     still returned with the warning attached
  3. Store errors - run persistence failures

USAGE:
  if errors.Is(err, lease.ErrInvalidParameter) {
      // 400, nothing was computed
  }

SEE ALSO:
  - types.go: Parameters.Validate produces InvalidParameterError
  - journal.go: CheckBalance produces Imbalance
*/
package lease

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidParameter is returned when lease parameters fail validation.
	// The computation is rejected synchronously; nothing is partially computed.
	ErrInvalidParameter = errors.New("invalid lease parameter")

	// ErrImbalanceDetected is reported when journal debit and credit totals
	// disagree beyond rounding tolerance. It is a warning, not a failure:
	// the generated tables are still returned.
	ErrImbalanceDetected = errors.New("journal imbalance detected")

	// ErrRunNotFound is returned when a stored run does not exist.
	ErrRunNotFound = errors.New("run not found")

	// ErrDuplicateRun is returned when saving a run whose ID already exists.
	// Runs are immutable snapshots; they are never overwritten.
	ErrDuplicateRun = errors.New("duplicate run id")

	// ErrNoDepositSchedule is returned when a deposit table is requested for
	// a run that was computed without a security deposit.
	ErrNoDepositSchedule = errors.New("run has no security deposit schedule")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidParameterError identifies which field failed validation and why.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// Imbalance reports a failed journal balance self-check. TotalDebit and
// TotalCredit are the 2-decimal sums; Tolerance is 0.01 per journal line,
// accumulated.
type Imbalance struct {
	TotalDebit  Money `json:"total_debit"`
	TotalCredit Money `json:"total_credit"`
	Tolerance   Money `json:"tolerance"`
}

func (e *Imbalance) Error() string {
	return fmt.Sprintf("journal does not balance: debit %s vs credit %s (tolerance %s)",
		e.TotalDebit.StringFixed(), e.TotalCredit.StringFixed(), e.Tolerance.StringFixed())
}

func (e *Imbalance) Unwrap() error {
	return ErrImbalanceDetected
}

// Difference returns |debit - credit|.
func (e *Imbalance) Difference() Money {
	return e.TotalDebit.Sub(e.TotalCredit).Abs()
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsInvalidParameter returns true if the error is a parameter rejection.
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

// IsImbalance returns true if the error is the journal self-check warning.
func IsImbalance(err error) bool {
	return errors.Is(err, ErrImbalanceDetected)
}

// IsNotFound returns true if the error indicates a missing run.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRunNotFound)
}
