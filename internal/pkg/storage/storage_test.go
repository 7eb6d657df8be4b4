package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisTest(t *testing.T, ttl time.Duration) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	store, err := NewRedisStorage(context.Background(), RedisOptions{
		Addr:       mr.Addr(),
		DefaultTTL: ttl,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage(0)

	t.Run("missing key", func(t *testing.T) {
		v, ok, err := store.Get(ctx, "absent")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set get delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", "v", 0))
		v, ok, err := store.Get(ctx, "k")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", v)

		require.NoError(t, store.Delete(ctx, "k"))
		_, ok, _ = store.Get(ctx, "k")
		assert.False(t, ok)
	})

	t.Run("explicit ttl expires", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "short", "v", 10*time.Millisecond))
		time.Sleep(30 * time.Millisecond)
		_, ok, _ := store.Get(ctx, "short")
		assert.False(t, ok)
	})
}

func TestRedisStorage(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisTest(t, time.Minute)

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "absent")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set applies default ttl", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", "v", 0))
		v, ok, err := store.Get(ctx, "k")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", v)
		assert.Equal(t, time.Minute, mr.TTL("k"))
	})

	t.Run("expiry", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "exp", "v", 2*time.Second))
		mr.FastForward(3 * time.Second)
		_, ok, err := store.Get(ctx, "exp")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete many", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "a", "1", 0))
		require.NoError(t, store.Set(ctx, "b", "2", 0))
		require.NoError(t, store.Delete(ctx, "a", "b"))
		assert.False(t, mr.Exists("a"))
		assert.False(t, mr.Exists("b"))
		assert.NoError(t, store.Delete(ctx))
	})
}

func TestNewRedisStorageUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisStorage(context.Background(), RedisOptions{Addr: addr})
	assert.Error(t, err)
}

func TestNamespace(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisTest(t, 0)

	alice := Namespace(store, BrowserPrefix("alice"))
	bob := Namespace(store, BrowserPrefix("bob"))

	require.NoError(t, alice.Set(ctx, TokenKey, "a-token", 0))
	require.NoError(t, bob.Set(ctx, TokenKey, "b-token", 0))

	got, err := mr.Get("stall:alice:stall_token")
	require.NoError(t, err)
	assert.Equal(t, "a-token", got)

	require.NoError(t, alice.Delete(ctx, TokenKey))
	_, ok, _ := alice.Get(ctx, TokenKey)
	assert.False(t, ok)

	v, ok, _ := bob.Get(ctx, TokenKey)
	assert.True(t, ok)
	assert.Equal(t, "b-token", v)
}
