package store_test

import (
	"context"
	"testing"

	"github.com/99designs/keyring"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/teamboard/internal/credential"
	"github.com/nhle/teamboard/internal/model"
	"github.com/nhle/teamboard/internal/store"
)

func newRedisStore(t *testing.T) (*store.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := store.NewRedisStore(client)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "kanban-storage")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Put(ctx, "kanban-storage", []byte(`{"tasks":[]}`)))

	raw, err := mr.Get("teamboard:kanban-storage")
	require.NoError(t, err)
	assert.Equal(t, `{"tasks":[]}`, raw)
	assert.Zero(t, mr.TTL("teamboard:kanban-storage"))

	got, err := s.Get(ctx, "kanban-storage")
	require.NoError(t, err)
	assert.Equal(t, `{"tasks":[]}`, string(got))

	require.NoError(t, s.Delete(ctx, "kanban-storage"))
	assert.False(t, mr.Exists("teamboard:kanban-storage"))
}

func TestRedisStoreSurfacesServerErrors(t *testing.T) {
	s, mr := newRedisStore(t)
	mr.SetError("LOADING")

	_, err := s.Get(context.Background(), "kanban-storage")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestOpenRedisUsesKeyringPassword(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	mr.RequireAuth("hunter2")

	credential.Use(keyring.NewArrayKeyring([]keyring.Item{
		{Key: "redis-password", Data: []byte("hunter2")},
	}))
	t.Cleanup(func() { credential.Use(nil) })

	s, err := store.Open(context.Background(), model.StorageConfig{
		Backend:   model.BackendRedis,
		RedisAddr: mr.Addr(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Put(context.Background(), "k", []byte("v")))
}

func TestOpenSQLiteCreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/board.db"

	s, err := store.Open(context.Background(), model.StorageConfig{
		Backend: model.BackendSQLite,
		Path:    path,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Put(context.Background(), "k", []byte("v")))
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := store.Open(context.Background(), model.StorageConfig{Backend: "floppy"})
	require.Error(t, err)
}
