package redis

import (
	"context"
	"testing"
	"time"

	"DishaAssistant/pkg/storage"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (IRedis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWithClient(client), mr
}

func TestRedis_SetGet(t *testing.T) {
	r, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "disha:context:s1", []byte(`{"a":1}`), 0))

	got, err := r.Get(ctx, "disha:context:s1")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestRedis_GetMissingKey(t *testing.T) {
	r, _ := newTestClient(t)

	_, err := r.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRedis_TTL(t *testing.T) {
	r, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("v"), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := r.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRedis_DeleteMany(t *testing.T) {
	r, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, r.Set(ctx, "b", []byte("2"), 0))
	require.NoError(t, r.Set(ctx, "c", []byte("3"), 0))

	require.NoError(t, r.Delete(ctx, "a", "b"))

	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
	assert.True(t, mr.Exists("c"))
}
