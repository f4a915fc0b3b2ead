/*
scenarios_test.go - Tests for the demo scenario endpoints

PURPOSE:
	Tests that the scenario catalog is served correctly and that loading a
	scenario computes and stores a run with the expected numbers:
	- Catalog listing matches the factory presets
	- Each preset computes to a balanced run
	- Feature-specific output (deposit, lock-in) survives the load

Test fixtures (newTestServer, doJSON, decodeBody) live in handlers_test.go.
*/
package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/meridian/lease-engine/factory"
)

func loadScenario(t *testing.T, router *chi.Mux, id string) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, router, http.MethodPost, "/api/scenarios/load", LoadScenarioRequest{ScenarioID: id})
}

func TestListScenarios_MatchesCatalog(t *testing.T) {
	// GIVEN: The preset catalog in the factory
	// WHEN: Fetching /api/scenarios
	// THEN: Every preset is listed, in catalog order, with name and description

	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/scenarios", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var scenarios []ScenarioDTO
	decodeBody(t, rec, &scenarios)

	presets := factory.Presets()
	if len(scenarios) != len(presets) {
		t.Fatalf("Expected %d scenarios, got %d", len(presets), len(scenarios))
	}
	for i, p := range presets {
		if scenarios[i].ID != p.ID {
			t.Errorf("Expected scenario %d to be %q, got %q", i, p.ID, scenarios[i].ID)
		}
		if scenarios[i].Name != p.Name {
			t.Errorf("Expected scenario name %q, got %q", p.Name, scenarios[i].Name)
		}
		if scenarios[i].Description == "" {
			t.Errorf("Expected a description for %q", p.ID)
		}
	}
}

func TestLoadScenario_StandardOffice(t *testing.T) {
	// GIVEN: The standard office preset
	// WHEN: Loading it
	// THEN: A run is computed, stored, and returned with the worked-example numbers

	router := newTestServer(t)

	rec := loadScenario(t, router, "standard-office")
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var run RunDTO
	decodeBody(t, rec, &run)

	if run.Name != "Standard Office Lease" {
		t.Errorf("Expected preset name, got %q", run.Name)
	}
	if !approxEqual(run.PresentValue, 276740.96) {
		t.Errorf("Expected PV 276740.96, got %.2f", run.PresentValue)
	}
	if !run.Balanced {
		t.Error("Expected a balanced journal")
	}
	if len(run.Schedule) != 8 {
		t.Errorf("Expected 8 schedule rows, got %d", len(run.Schedule))
	}

	// The loaded run shows up in the listing
	list := doJSON(t, router, http.MethodGet, "/api/runs", nil)
	var summaries []RunSummaryDTO
	decodeBody(t, list, &summaries)
	if len(summaries) != 1 {
		t.Fatalf("Expected 1 stored run, got %d", len(summaries))
	}
	if summaries[0].ID != run.ID {
		t.Errorf("Expected stored run %q, got %q", run.ID, summaries[0].ID)
	}
}

func TestLoadScenario_DepositedWarehouse(t *testing.T) {
	// GIVEN: The deposited warehouse preset
	// WHEN: Loading it
	// THEN: The run carries the deposit unwind schedule

	router := newTestServer(t)

	rec := loadScenario(t, router, "deposited-warehouse")
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var run RunDTO
	decodeBody(t, rec, &run)

	if !approxEqual(run.PresentValue, 233379.08) {
		t.Errorf("Expected PV 233379.08, got %.2f", run.PresentValue)
	}
	if run.Deposit == nil {
		t.Fatal("Expected a deposit schedule")
	}
	if !approxEqual(run.Deposit.Amount, 100000.00) {
		t.Errorf("Expected deposit amount 100000.00, got %.2f", run.Deposit.Amount)
	}
	if !approxEqual(run.Deposit.PresentValue, 68058.32) {
		t.Errorf("Expected deposit PV 68058.32, got %.2f", run.Deposit.PresentValue)
	}
	if !approxEqual(run.Deposit.DiscountDifference, 31941.68) {
		t.Errorf("Expected discount difference 31941.68, got %.2f", run.Deposit.DiscountDifference)
	}
	if len(run.Deposit.Rows) != 5 {
		t.Errorf("Expected 5 accretion rows, got %d", len(run.Deposit.Rows))
	}
	if run.LockIn != nil {
		t.Errorf("Expected no lock-in summary, got %+v", run.LockIn)
	}
}

func TestLoadScenario_LockedFacility(t *testing.T) {
	// GIVEN: The locked facility preset (paid in advance, 3-year lock-in)
	// WHEN: Loading it
	// THEN: The run carries the lock-in summary

	router := newTestServer(t)

	rec := loadScenario(t, router, "locked-facility")
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var run RunDTO
	decodeBody(t, rec, &run)

	if !approxEqual(run.PresentValue, 569525.01) {
		t.Errorf("Expected PV 569525.01, got %.2f", run.PresentValue)
	}
	if run.LockIn == nil {
		t.Fatal("Expected a lock-in summary")
	}
	if run.LockIn.LockInYears != 3 {
		t.Errorf("Expected 3 lock-in years, got %d", run.LockIn.LockInYears)
	}
	if run.LockIn.LockedPeriods != 3 {
		t.Errorf("Expected 3 locked periods, got %d", run.LockIn.LockedPeriods)
	}
	if !approxEqual(run.LockIn.LockedPayments, 240000.00) {
		t.Errorf("Expected locked payments 240000.00, got %.2f", run.LockIn.LockedPayments)
	}
	if run.LockIn.RemainingTermYears != 7 {
		t.Errorf("Expected 7 remaining years, got %d", run.LockIn.RemainingTermYears)
	}
}

func TestLoadScenario_Unknown(t *testing.T) {
	router := newTestServer(t)

	rec := loadScenario(t, router, "time-machine")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}

	var resp ErrorResponse
	decodeBody(t, rec, &resp)
	if resp.Code != "SCENARIO_NOT_FOUND" {
		t.Errorf("Expected code SCENARIO_NOT_FOUND, got %q", resp.Code)
	}
}

func TestLoadScenario_MalformedBody(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/scenarios/load", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}

	var resp ErrorResponse
	decodeBody(t, rec, &resp)
	if resp.Code != "INVALID_BODY" {
		t.Errorf("Expected code INVALID_BODY, got %q", resp.Code)
	}
}

func TestLoadScenario_AllPresetsCompute(t *testing.T) {
	// GIVEN: Every preset in the catalog
	// WHEN: Loading each one
	// THEN: Each computes to a stored, balanced run

	for _, p := range factory.Presets() {
		t.Run(p.ID, func(t *testing.T) {
			router := newTestServer(t)

			rec := loadScenario(t, router, p.ID)
			if rec.Code != http.StatusCreated {
				t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
			}

			var run RunDTO
			decodeBody(t, rec, &run)
			if run.Name != p.Name {
				t.Errorf("Expected name %q, got %q", p.Name, run.Name)
			}
			if !run.Balanced {
				t.Errorf("Expected a balanced journal for %s", p.ID)
			}
			if run.PresentValue <= 0 {
				t.Errorf("Expected a positive present value, got %.2f", run.PresentValue)
			}
		})
	}
}
