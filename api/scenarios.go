/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built lease scenarios that compute and store realistic runs
	for testing and demos. Each scenario exercises one engine feature: flat
	annuities, monthly frequency, escalation, security deposits, lock-in.

AVAILABLE SCENARIOS:

	standard-office:     Flat annual lease in arrears, the worked example
	monthly-equipment:   Monthly payments with a monthly discount rate
	escalating-retail:   Rent stepping up 5% a year after a holiday
	deposited-warehouse: Refundable deposit discounted to present value
	locked-facility:     Payments in advance with a lock-in window

HOW SCENARIOS WORK:
 1. Look up the preset lease definition in the factory catalog
 2. Parse it into engine parameters
 3. Compute the full result (schedule, journal, deposit, lock-in)
 4. Store the run and return it

	Loading a scenario adds a run; it never clears existing runs. Use
	POST /api/reset first for a clean slate.

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "deposited-warehouse"}

ADDING NEW SCENARIOS:
 1. Add a builder and catalog entry in factory/presets.go
 2. Nothing to change here; the handlers serve the catalog

SEE ALSO:
  - factory/presets.go: Preset lease definitions
  - handlers.go: computeAndStore, shared with POST /api/compute
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/meridian/lease-engine/factory"
)

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	presets := factory.Presets()

	dtos := make([]ScenarioDTO, len(presets))
	for i, p := range presets {
		dtos[i] = ScenarioDTO{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
		}
	}

	writeJSON(w, http.StatusOK, dtos)
}

// LoadScenario computes a predefined scenario and stores the run.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body", err)
		return
	}

	preset, ok := factory.PresetByID(req.ScenarioID)
	if !ok {
		writeError(w, http.StatusNotFound, "SCENARIO_NOT_FOUND", "Unknown scenario", nil)
		return
	}

	var lj factory.LeaseJSON
	if err := json.Unmarshal([]byte(preset.JSON), &lj); err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Malformed preset definition", err)
		return
	}

	run, ok := h.computeAndStore(w, r, preset.Name, lj)
	if !ok {
		return
	}

	writeJSON(w, http.StatusCreated, toRunDTO(h.Factory, run))
}
