/*
store.go - Persistence interface for computation runs

PURPOSE:
  Defines the interface between the engine and the database. A Run is one
  saved computation: the parameters that went in and the Result that came
  out, stamped with an ID and creation time. Different implementations can
  use SQLite or in-memory storage.

RUNS ARE IMMUTABLE:
  A saved run is never updated. Re-running a lease produces a NEW run with
  a new ID; the old one stays as an audit trail. The only mutations are
  Delete (drop one run) and Reset (drop everything, used by tests).

DUPLICATE IDS:
  Save rejects an ID that already exists with ErrDuplicateRun. IDs are
  assigned by the caller, so a retry with the same ID is detected instead
  of silently overwritten.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: Production SQLite
  - lease/store/memory.go: In-memory for testing

EXAMPLE:
  runs := sqlite.New("./leases.db")
  err := runs.Save(ctx, lease.Run{ID: "run-1", Name: "HQ lease", Params: p, Result: res})
  if errors.Is(err, lease.ErrDuplicateRun) {
      // Already saved, safe to ignore
  }

SEE ALSO:
  - engine.go: produces the Result a Run wraps
  - store/sqlite/sqlite.go: Concrete implementation
*/
package lease

import (
	"context"
	"time"
)

// =============================================================================
// RUN - One saved computation
// =============================================================================

// Run is a persisted computation: inputs, outputs, identity.
type Run struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Params    Parameters `json:"params"`
	Result    *Result    `json:"result"`
	CreatedAt time.Time  `json:"created_at"`
}

// RunSummary is the listing view of a run: enough to render a table row
// without loading the full schedule and journal.
type RunSummary struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	PresentValue     Money            `json:"present_value"`
	TermYears        int              `json:"term_years"`
	PaymentFrequency PaymentFrequency `json:"payment_frequency"`
	CreatedAt        time.Time        `json:"created_at"`
}

// Summary projects a Run down to its listing view.
func (r Run) Summary() RunSummary {
	return RunSummary{
		ID:               r.ID,
		Name:             r.Name,
		PresentValue:     r.Result.PresentValue,
		TermYears:        r.Params.TermYears,
		PaymentFrequency: r.Params.PaymentFrequency,
		CreatedAt:        r.CreatedAt,
	}
}

// =============================================================================
// RUN STORE - Interface for run persistence
// =============================================================================

// RunStore persists computation runs.
type RunStore interface {
	// Save persists a run. Returns ErrDuplicateRun if the ID exists.
	Save(ctx context.Context, run Run) error

	// Get returns the run with the given ID, or ErrRunNotFound.
	Get(ctx context.Context, id string) (Run, error)

	// Latest returns the most recently created run, or ErrRunNotFound
	// when the store is empty.
	Latest(ctx context.Context) (Run, error)

	// List returns summaries of all runs, newest first.
	List(ctx context.Context) ([]RunSummary, error)

	// Delete removes the run with the given ID, or ErrRunNotFound.
	Delete(ctx context.Context, id string) error

	// Reset removes all runs.
	Reset(ctx context.Context) error
}
