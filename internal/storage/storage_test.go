package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	ctx := context.Background()

	sqliteStore, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "state.db"), 1, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]Store{
		DriverSQLite: sqliteStore,
		DriverMemory: NewMemoryStore(),
	}
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, "entryPrice", "100"))
			v, err := store.Get(ctx, "entryPrice")
			require.NoError(t, err)
			assert.Equal(t, "100", v)

			require.NoError(t, store.Set(ctx, "entryPrice", "101.5"))
			v, err = store.Get(ctx, "entryPrice")
			require.NoError(t, err)
			assert.Equal(t, "101.5", v, "second write must overwrite")

			require.NoError(t, store.Set(ctx, "slPercent", ""))
			v, err = store.Get(ctx, "slPercent")
			require.NoError(t, err)
			assert.Equal(t, "", v, "empty value is a value, not a missing key")

			require.NoError(t, store.Clear(ctx))
			_, err = store.Get(ctx, "entryPrice")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	first, err := NewSQLiteStore(ctx, path, 1, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "dcaEntries", `[{"id":"a","amount":"1","tokens":"2"}]`))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(ctx, path, 1, zap.NewNop())
	require.NoError(t, err)
	defer second.Close()

	v, err := second.Get(ctx, "dcaEntries")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a","amount":"1","tokens":"2"}]`, v)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Options{Driver: DriverMemory}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(ctx, Options{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "s.db")}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, Options{Driver: "redis"}, zap.NewNop())
	assert.Error(t, err)

	_, err = Open(ctx, Options{Driver: DriverSQLite}, zap.NewNop())
	assert.Error(t, err, "sqlite requires a path")
}
