package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "gcpblocks.db"), store.Path())
	assert.FileExists(t, store.Path())
}

func TestNewStore_MigrationsAreRecordedOnce(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestHistoryStore_RecordAndGet(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()
	started := time.Date(2026, 2, 3, 4, 5, 6, 7, time.UTC)

	inv := domain.Invocation{
		ID:               "inv-1",
		BlockID:          "storage.buckets.get",
		Inputs:           map[string]any{"bucket": "b", "maxResults": float64(3)},
		Status:           domain.InvocationFailed,
		StatusCode:       404,
		Error:            "request failed with status 404 Not Found",
		CredentialSource: domain.CredentialServiceAccountKey,
		StartedAt:        started,
		Duration:         1500 * time.Millisecond,
	}
	require.NoError(t, history.Record(ctx, inv))

	got, err := history.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, inv, *got)

	_, err = history.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryStore_Record_Upsert(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()

	inv := domain.Invocation{ID: "inv-1", BlockID: "b", Status: domain.InvocationFailed, StartedAt: time.Now()}
	require.NoError(t, history.Record(ctx, inv))
	inv.Status = domain.InvocationSucceeded
	inv.StatusCode = 200
	require.NoError(t, history.Record(ctx, inv))

	got, err := history.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, domain.InvocationSucceeded, got.Status)
	assert.Equal(t, 200, got.StatusCode)
	assert.Nil(t, got.Inputs)
}

func TestHistoryStore_Record_EmptyID(t *testing.T) {
	err := setupTestStore(t).HistoryStore().Record(context.Background(), domain.Invocation{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryStore_ListAndPrune(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, history.Record(ctx, domain.Invocation{
			ID:        fmt.Sprintf("inv-%d", i),
			BlockID:   "storage.objects.list",
			Status:    domain.InvocationSucceeded,
			StartedAt: base.Add(time.Duration(i) * 24 * time.Hour),
		}))
	}

	all, err := history.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "inv-4", all[0].ID)

	top, err := history.List(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"inv-4", "inv-3"}, []string{top[0].ID, top[1].ID})

	removed, err := history.Prune(ctx, base.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	rest, err := history.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, rest, 3)
}
