/*
handlers.go - HTTP API handlers for the lease amortization engine

PURPOSE:
  Exposes the lease engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Compute:
    POST   /api/compute                 Compute a lease and store the run

  Runs:
    GET    /api/runs                    List stored runs (summaries)
    GET    /api/runs/latest             Most recent run, in full
    GET    /api/runs/{runID}            One run, in full
    DELETE /api/runs/{runID}            Delete a run
    GET    /api/runs/{runID}/export.xlsx          Workbook download
    GET    /api/runs/{runID}/export/{table}.csv   One table as CSV

  Scenarios:
    GET    /api/scenarios               List demo scenarios
    POST   /api/scenarios/load          Compute and store a demo scenario

  Reference:
    GET    /api/accounts                Chart of accounts

  Admin:
    POST   /api/reset                   Clear all stored runs (dev only)

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Runs: run persistence (lease.RunStore)
  - Factory: JSON to Parameters conversion

REQUEST FLOW:
  1. Parse HTTP request
  2. Convert JSON to lease.Parameters via the factory
  3. Call domain logic (lease.Compute, the store, the exporters)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400 INVALID_PARAMETER: Validation errors, nothing was computed
  - 404 RUN_NOT_FOUND/...: Missing run, table, or deposit schedule
  - 409 DUPLICATE_RUN:     Run ID collision on save
  - 500 INTERNAL:          Storage or rendering failures

  A journal imbalance is NOT an error: the run is returned with
  balanced=false and the imbalance details attached.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meridian/lease-engine/export"
	"github.com/meridian/lease-engine/factory"
	"github.com/meridian/lease-engine/lease"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Runs    lease.RunStore
	Factory *factory.LeaseFactory
}

// NewHandler creates a new handler backed by the given run store.
func NewHandler(runs lease.RunStore) *Handler {
	return &Handler{
		Runs:    runs,
		Factory: factory.NewLeaseFactory(),
	}
}

// newRunID mints a unique run identifier.
func newRunID() string {
	return fmt.Sprintf("run-%d", time.Now().UnixNano())
}

// =============================================================================
// COMPUTE HANDLER
// =============================================================================

// ComputeLease computes a lease from a JSON definition and stores the run.
func (h *Handler) ComputeLease(w http.ResponseWriter, r *http.Request) {
	var lj factory.LeaseJSON
	if err := json.NewDecoder(r.Body).Decode(&lj); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body", err)
		return
	}

	run, ok := h.computeAndStore(w, r, lj.Name, lj)
	if !ok {
		return
	}

	writeJSON(w, http.StatusCreated, toRunDTO(h.Factory, run))
}

// computeAndStore runs the full parse-compute-save path shared by the
// compute endpoint and the scenario loader. On failure it writes the error
// response itself and reports ok=false.
func (h *Handler) computeAndStore(w http.ResponseWriter, r *http.Request, name string, lj factory.LeaseJSON) (lease.Run, bool) {
	params, err := h.Factory.FromJSON(lj)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PARAMETER", "Invalid lease definition", err)
		return lease.Run{}, false
	}

	result, err := lease.Compute(params)
	if err != nil {
		if lease.IsInvalidParameter(err) {
			writeError(w, http.StatusBadRequest, "INVALID_PARAMETER", "Invalid lease parameters", err)
			return lease.Run{}, false
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Computation failed", err)
		return lease.Run{}, false
	}

	if name == "" {
		name = fmt.Sprintf("%d-year lease", params.TermYears)
	}

	run := lease.Run{
		ID:        newRunID(),
		Name:      name,
		Params:    params,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.Runs.Save(r.Context(), run); err != nil {
		if errors.Is(err, lease.ErrDuplicateRun) {
			writeError(w, http.StatusConflict, "DUPLICATE_RUN", "Run ID already exists", err)
			return lease.Run{}, false
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to save run", err)
		return lease.Run{}, false
	}

	return run, true
}

// =============================================================================
// RUN HANDLERS
// =============================================================================

// ListRuns returns summaries of all stored runs, newest first.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Runs.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to list runs", err)
		return
	}

	dtos := make([]RunSummaryDTO, len(summaries))
	for i, s := range summaries {
		dtos[i] = toRunSummaryDTO(s)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// GetRun returns one stored run in full.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "runID")

	run, err := h.Runs.Get(r.Context(), id)
	if err != nil {
		if lease.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "RUN_NOT_FOUND", "Run not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to get run", err)
		return
	}

	writeJSON(w, http.StatusOK, toRunDTO(h.Factory, run))
}

// GetLatestRun returns the most recently created run in full.
func (h *Handler) GetLatestRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.Runs.Latest(r.Context())
	if err != nil {
		if lease.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "RUN_NOT_FOUND", "No runs computed yet", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to get latest run", err)
		return
	}

	writeJSON(w, http.StatusOK, toRunDTO(h.Factory, run))
}

// DeleteRun removes a stored run.
func (h *Handler) DeleteRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "runID")

	if err := h.Runs.Delete(r.Context(), id); err != nil {
		if lease.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "RUN_NOT_FOUND", "Run not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to delete run", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "run_id": id})
}

// =============================================================================
// EXPORT HANDLERS
// =============================================================================

// ExportWorkbook streams a run as a multi-sheet XLSX workbook.
func (h *Handler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "runID")

	run, err := h.Runs.Get(r.Context(), id)
	if err != nil {
		if lease.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "RUN_NOT_FOUND", "Run not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to get run", err)
		return
	}

	f, err := export.Workbook(run.Name, run.Result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to render workbook", err)
		return
	}

	// Render fully before touching the response so failures still map to
	// a JSON error instead of a truncated download.
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		f.Close()
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to render workbook", err)
		return
	}
	f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="lease_%s.xlsx"`, run.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// ExportTableCSV streams one output table (schedule, journal, deposit) as CSV.
func (h *Handler) ExportTableCSV(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "runID")
	table := export.Table(chi.URLParam(r, "table"))

	run, err := h.Runs.Get(r.Context(), id)
	if err != nil {
		if lease.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "RUN_NOT_FOUND", "Run not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to get run", err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteTableCSV(&buf, run.Result, table); err != nil {
		switch {
		case errors.Is(err, export.ErrUnknownTable):
			writeError(w, http.StatusNotFound, "UNKNOWN_TABLE", "Unknown export table", err)
		case errors.Is(err, lease.ErrNoDepositSchedule):
			writeError(w, http.StatusNotFound, "NO_DEPOSIT", "Run has no security deposit", err)
		default:
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to render table", err)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="lease_%s_%s.csv"`, run.ID, table))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// =============================================================================
// REFERENCE HANDLERS
// =============================================================================

// ListAccounts returns the fixed chart of accounts.
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := lease.ListAccounts()

	dtos := make([]AccountDTO, len(accounts))
	for i, acc := range accounts {
		dtos[i] = AccountDTO{
			Name:     acc.Name,
			Category: string(acc.Category),
		}
	}

	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// ADMIN HANDLERS
// =============================================================================

// ResetStore clears all stored runs.
func (h *Handler) ResetStore(w http.ResponseWriter, r *http.Request) {
	if err := h.Runs.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to reset store", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string, err error) {
	resp := ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
