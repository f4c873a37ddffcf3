package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/teamboard/internal/store"
	"github.com/nhle/teamboard/tests/testutil"
)

func TestSQLiteStoreGetMissing(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.Get(context.Background(), "kanban-storage")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSQLiteStorePutGetReplace(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "kanban-storage", []byte(`{"members":[]}`)))
	got, err := s.Get(ctx, "kanban-storage")
	require.NoError(t, err)
	assert.JSONEq(t, `{"members":[]}`, string(got))

	require.NoError(t, s.Put(ctx, "kanban-storage", []byte(`{"tags":[]}`)))
	got, err = s.Get(ctx, "kanban-storage")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":[]}`, string(got))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"kanban-storage"}, keys)
}

func TestSQLiteStoreDelete(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "a", []byte("1")))
	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "a"))

	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSQLiteStoreMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.db")
	ctx := context.Background()

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "k", []byte("v")))
	require.NoError(t, s.Close())

	s, err = store.NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	v, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}
