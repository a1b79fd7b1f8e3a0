package kv

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *RedisStore {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return NewRedisStore(client)
}

func TestRedisStore_GetSet(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "project:1", []byte(`{"title":"x"}`), 0))

	val, found, err := store.Get(ctx, "project:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"title":"x"}`), val)
}

func TestRedisStore_Delete(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "project:1", []byte("a"), 0))
	require.NoError(t, store.Delete(ctx, "project:1"))

	_, found, err := store.Get(ctx, "project:1")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is not an error
	require.NoError(t, store.Delete(ctx, "project:1"))
}

func TestRedisStore_ScanPrefix(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "project:1", []byte("a"), 0))
	require.NoError(t, store.Set(ctx, "project:2", []byte("b"), 0))
	require.NoError(t, store.Set(ctx, "testimonial:1", []byte("c"), 0))

	entries, err := store.ScanPrefix(ctx, "project:")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	keys := []string{entries[0].Key, entries[1].Key}
	assert.ElementsMatch(t, []string{"project:1", "project:2"}, keys)
}

func TestRedisStore_ScanPrefix_Empty(t *testing.T) {
	store := setupTestRedis(t)

	entries, err := store.ScanPrefix(context.Background(), "achievement:")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRedisStore_SetWithTTL(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "session:abc", []byte("v"), time.Minute))

	_, found, err := store.Get(ctx, "session:abc")
	require.NoError(t, err)
	assert.True(t, found)
}
