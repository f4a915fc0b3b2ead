package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/meridian/lease-engine/lease"
	"github.com/meridian/lease-engine/lease/store"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func testRun(t *testing.T, id string, createdAt time.Time) lease.Run {
	t.Helper()

	params := lease.Parameters{
		PaymentAmount:             lease.NewMoney(10000),
		AnnualDiscountRatePercent: 10,
		TermYears:                 3,
	}
	result, err := lease.Compute(params)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	return lease.Run{
		ID:        id,
		Name:      "lease " + id,
		Params:    params,
		Result:    result,
		CreatedAt: createdAt,
	}
}

func at(hour int) time.Time {
	return time.Date(2025, time.March, 1, hour, 0, 0, 0, time.UTC)
}

// =============================================================================
// MEMORY STORE TESTS
// =============================================================================

func TestMemory_SaveAndGet_RoundTrip(t *testing.T) {
	// GIVEN: An empty store
	// WHEN: Saving a run and reading it back
	// THEN: The stored run carries the same identity and result

	ctx := context.Background()
	runs := store.NewMemory()

	saved := testRun(t, "run-1", at(9))
	if err := runs.Save(ctx, saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := runs.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != "run-1" || got.Name != "lease run-1" {
		t.Errorf("identity mismatch: %q / %q", got.ID, got.Name)
	}
	if !got.Result.PresentValue.Equal(saved.Result.PresentValue) {
		t.Errorf("result PV mismatch: %s vs %s",
			got.Result.PresentValue.StringFixed(), saved.Result.PresentValue.StringFixed())
	}
	if !got.CreatedAt.Equal(at(9)) {
		t.Errorf("created at mismatch: %s", got.CreatedAt)
	}
}

func TestMemory_Save_DuplicateIDRejected(t *testing.T) {
	// GIVEN: A saved run
	// WHEN: Saving another run under the same ID
	// THEN: ErrDuplicateRun, and the original is untouched

	ctx := context.Background()
	runs := store.NewMemory()

	original := testRun(t, "run-1", at(9))
	if err := runs.Save(ctx, original); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	duplicate := testRun(t, "run-1", at(10))
	duplicate.Name = "imposter"
	err := runs.Save(ctx, duplicate)
	if !errors.Is(err, lease.ErrDuplicateRun) {
		t.Fatalf("expected ErrDuplicateRun, got: %v", err)
	}

	got, _ := runs.Get(ctx, "run-1")
	if got.Name != "lease run-1" {
		t.Errorf("duplicate save must not overwrite, got name %q", got.Name)
	}
}

func TestMemory_Get_MissingRun(t *testing.T) {
	runs := store.NewMemory()

	_, err := runs.Get(context.Background(), "no-such-run")
	if !lease.IsNotFound(err) {
		t.Errorf("expected ErrRunNotFound, got: %v", err)
	}
}

func TestMemory_Latest_ReturnsNewest(t *testing.T) {
	// GIVEN: Three runs saved out of chronological order
	// WHEN: Asking for the latest
	// THEN: The run with the newest CreatedAt wins

	ctx := context.Background()
	runs := store.NewMemory()

	runs.Save(ctx, testRun(t, "run-b", at(11)))
	runs.Save(ctx, testRun(t, "run-a", at(9)))
	runs.Save(ctx, testRun(t, "run-c", at(14)))

	latest, err := runs.Latest(ctx)
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}
	if latest.ID != "run-c" {
		t.Errorf("expected run-c, got %s", latest.ID)
	}
}

func TestMemory_Latest_EmptyStore(t *testing.T) {
	runs := store.NewMemory()

	_, err := runs.Latest(context.Background())
	if !lease.IsNotFound(err) {
		t.Errorf("empty store should report ErrRunNotFound, got: %v", err)
	}
}

func TestMemory_List_NewestFirstWithStableTies(t *testing.T) {
	// GIVEN: Runs with distinct timestamps plus two sharing one
	// WHEN: Listing
	// THEN: Newest first; equal timestamps order by descending ID
	//       (generated IDs grow over time, so descending means newest)

	ctx := context.Background()
	runs := store.NewMemory()

	runs.Save(ctx, testRun(t, "run-old", at(8)))
	runs.Save(ctx, testRun(t, "run-z", at(12)))
	runs.Save(ctx, testRun(t, "run-a", at(12)))

	summaries, err := runs.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}

	wantOrder := []string{"run-z", "run-a", "run-old"}
	for i, want := range wantOrder {
		if summaries[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, summaries[i].ID)
		}
	}

	// Summaries carry the listing columns, not the full result.
	if !summaries[0].PresentValue.Equal(lease.MustParseMoney("24868.52")) {
		t.Errorf("summary PV should be 24868.52, got %s", summaries[0].PresentValue.StringFixed())
	}
	if summaries[0].TermYears != 3 {
		t.Errorf("summary term should be 3, got %d", summaries[0].TermYears)
	}
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	runs := store.NewMemory()

	runs.Save(ctx, testRun(t, "run-1", at(9)))

	if err := runs.Delete(ctx, "run-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := runs.Get(ctx, "run-1"); !lease.IsNotFound(err) {
		t.Error("deleted run should be gone")
	}
	if err := runs.Delete(ctx, "run-1"); !lease.IsNotFound(err) {
		t.Errorf("second delete should report ErrRunNotFound, got: %v", err)
	}
}

func TestMemory_Reset_ClearsEverything(t *testing.T) {
	ctx := context.Background()
	runs := store.NewMemory()

	runs.Save(ctx, testRun(t, "run-1", at(9)))
	runs.Save(ctx, testRun(t, "run-2", at(10)))

	if err := runs.Reset(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	summaries, _ := runs.List(ctx)
	if len(summaries) != 0 {
		t.Errorf("reset store should list nothing, got %d", len(summaries))
	}
	if _, err := runs.Latest(ctx); !lease.IsNotFound(err) {
		t.Error("reset store should have no latest run")
	}
}
