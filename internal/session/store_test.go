package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := &Data{UserID: 1, Username: "user1", Cart: map[string]int{"2": 3}}
	require.NoError(t, store.Save(ctx, "sid", data, time.Hour))

	loaded, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, uint(1), loaded.UserID)
	assert.Equal(t, map[string]int{"2": 3}, loaded.Cart)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_GetExpired(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid", &Data{}, -time.Second))

	_, err := store.Get(ctx, "sid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid", &Data{}, time.Hour))
	require.NoError(t, store.Delete(ctx, "sid"))

	_, err := store.Get(ctx, "sid")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is fine.
	assert.NoError(t, store.Delete(ctx, "sid"))
}

func TestMemoryStore_Prune(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "live", &Data{}, time.Hour))
	require.NoError(t, store.Save(ctx, "dead1", &Data{}, -time.Second))
	require.NoError(t, store.Save(ctx, "dead2", &Data{}, -time.Second))
	assert.Equal(t, 3, store.Len())

	removed := store.Prune()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(ctx, "live")
	assert.NoError(t, err)
}
