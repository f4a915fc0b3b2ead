package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian/lease-engine/lease"
	"github.com/meridian/lease-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// fullRun computes a lease that exercises every optional table so the JSON
// round trip covers deposit and lock-in documents too.
func fullRun(t *testing.T, id string, createdAt time.Time) lease.Run {
	t.Helper()

	params := lease.Parameters{
		PaymentAmount:             lease.NewMoney(60000),
		AnnualDiscountRatePercent: 9,
		TermYears:                 5,
		PaymentFrequency:          lease.FrequencyAnnual,
		PaymentTiming:             lease.TimingEndOfPeriod,
		LockInYears:               2,
		SecurityDeposit: &lease.SecurityDeposit{
			Amount:            lease.NewMoney(100000),
			AnnualRatePercent: 8,
		},
	}
	result, err := lease.Compute(params)
	require.NoError(t, err)

	return lease.Run{
		ID:        id,
		Name:      "warehouse " + id,
		Params:    params,
		Result:    result,
		CreatedAt: createdAt,
	}
}

func stamp(hour int) time.Time {
	return time.Date(2025, time.June, 10, hour, 0, 0, 0, time.UTC)
}

// =============================================================================
// ROUND TRIP TESTS
// =============================================================================

func TestStore_SaveAndGet_FullDocumentRoundTrip(t *testing.T) {
	// GIVEN: A run with a deposit and a lock-in
	// WHEN: Saving and reading it back
	// THEN: Every table survives the JSON round trip with decimal
	//       precision intact

	store := newTestStore(t)
	ctx := context.Background()

	saved := fullRun(t, "run-1", stamp(9))
	require.NoError(t, store.Save(ctx, saved))

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)

	assert.Equal(t, "run-1", got.ID)
	assert.Equal(t, "warehouse run-1", got.Name)
	assert.True(t, got.CreatedAt.Equal(stamp(9)), "created at should round trip: %s", got.CreatedAt)

	// Parameters round trip.
	assert.Equal(t, 5, got.Params.TermYears)
	assert.Equal(t, lease.FrequencyAnnual, got.Params.PaymentFrequency)
	require.NotNil(t, got.Params.SecurityDeposit)
	assert.True(t, got.Params.SecurityDeposit.Amount.Equal(lease.NewMoney(100000)))

	// Result tables round trip at full precision.
	assert.True(t, got.Result.PresentValue.Equal(saved.Result.PresentValue),
		"PV should survive: %s vs %s", got.Result.PresentValue.StringFixed(), saved.Result.PresentValue.StringFixed())
	require.Len(t, got.Result.Schedule, 5)
	assert.True(t, got.Result.Schedule[0].Interest.Equal(saved.Result.Schedule[0].Interest))
	require.NotNil(t, got.Result.Deposit)
	require.Len(t, got.Result.Deposit.Rows, 5)
	assert.True(t, got.Result.Deposit.PresentValue.Equal(lease.MustParseMoney("68058.32")))
	require.NotNil(t, got.Result.LockIn)
	assert.Equal(t, 2, got.Result.LockIn.LockInYears)
	assert.Len(t, got.Result.Journal, len(saved.Result.Journal))
	assert.True(t, got.Result.Balanced())
}

func TestStore_Save_DuplicateIDRejected(t *testing.T) {
	// GIVEN: A saved run
	// WHEN: Saving a different run under the same ID
	// THEN: ErrDuplicateRun; the stored row is untouched

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, fullRun(t, "run-1", stamp(9))))

	imposter := fullRun(t, "run-1", stamp(10))
	imposter.Name = "imposter"
	err := store.Save(ctx, imposter)
	assert.ErrorIs(t, err, lease.ErrDuplicateRun)

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "warehouse run-1", got.Name, "duplicate save must not overwrite")
}

func TestStore_Get_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "no-such-run")
	assert.ErrorIs(t, err, lease.ErrRunNotFound)
}

// =============================================================================
// LISTING TESTS
// =============================================================================

func TestStore_Latest_ReturnsNewest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, fullRun(t, "run-b", stamp(11))))
	require.NoError(t, store.Save(ctx, fullRun(t, "run-a", stamp(9))))
	require.NoError(t, store.Save(ctx, fullRun(t, "run-c", stamp(14))))

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-c", latest.ID)
}

func TestStore_Latest_EmptyStore(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Latest(context.Background())
	assert.ErrorIs(t, err, lease.ErrRunNotFound)
}

func TestStore_List_NewestFirstFromDenormalizedColumns(t *testing.T) {
	// GIVEN: Three saved runs
	// WHEN: Listing
	// THEN: Newest first, and the summaries carry the listing columns
	//       without parsing the JSON documents

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, fullRun(t, "run-old", stamp(8))))
	require.NoError(t, store.Save(ctx, fullRun(t, "run-mid", stamp(10))))
	require.NoError(t, store.Save(ctx, fullRun(t, "run-new", stamp(12))))

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, "run-new", summaries[0].ID)
	assert.Equal(t, "run-mid", summaries[1].ID)
	assert.Equal(t, "run-old", summaries[2].ID)

	assert.True(t, summaries[0].PresentValue.Equal(lease.MustParseMoney("233379.08")),
		"summary PV should be 233379.08, got %s", summaries[0].PresentValue.StringFixed())
	assert.Equal(t, 5, summaries[0].TermYears)
	assert.Equal(t, lease.FrequencyAnnual, summaries[0].PaymentFrequency)
}

func TestStore_List_TimestampTiesBreakOnID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, fullRun(t, "run-z", stamp(10))))
	require.NoError(t, store.Save(ctx, fullRun(t, "run-a", stamp(10))))

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// ORDER BY created_at DESC, id DESC.
	assert.Equal(t, "run-z", summaries[0].ID)
	assert.Equal(t, "run-a", summaries[1].ID)
}

// =============================================================================
// MUTATION TESTS
// =============================================================================

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, fullRun(t, "run-1", stamp(9))))

	require.NoError(t, store.Delete(ctx, "run-1"))

	_, err := store.Get(ctx, "run-1")
	assert.ErrorIs(t, err, lease.ErrRunNotFound)

	err = store.Delete(ctx, "run-1")
	assert.ErrorIs(t, err, lease.ErrRunNotFound, "second delete should report not found")
}

func TestStore_Reset_ClearsEverything(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, fullRun(t, "run-1", stamp(9))))
	require.NoError(t, store.Save(ctx, fullRun(t, "run-2", stamp(10))))

	require.NoError(t, store.Reset(ctx))

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
