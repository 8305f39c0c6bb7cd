package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	id, err := store.Record(Entry{
		File:     "car.json",
		Passed:   3,
		Failed:   1,
		Skipped:  2,
		Duration: 150 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, id, e.ID)
	assert.Equal(t, "car.json", e.File)
	assert.Equal(t, 3, e.Passed)
	assert.Equal(t, 1, e.Failed)
	assert.Equal(t, 2, e.Skipped)
	assert.Equal(t, 150*time.Millisecond, e.Duration)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestStoreRecentOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := store.Record(Entry{
			File:      "run.json",
			Passed:    i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	entries, err := store.Recent(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	assert.Equal(t, 4, entries[0].Passed)
	assert.Equal(t, 3, entries[1].Passed)
	assert.Equal(t, 2, entries[2].Passed)
}

func TestStoreRecentEmpty(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.Recent(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
