package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return New(client, "test:", time.Minute)
}

func TestCache_SetGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	require.NoError(t, c.Set(ctx, "product:1", payload{Name: "Vintage Watch", Price: 250}))

	var got payload
	hit, err := c.Get(ctx, "product:1", &got)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, "Vintage Watch", got.Name)
	require.Equal(t, 250.0, got.Price)
}

func TestCache_Miss(t *testing.T) {
	c := newTestCache(t)

	var got map[string]any
	hit, err := c.Get(context.Background(), "product:does-not-exist", &got)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestCache_Delete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "product:2", "value"))
	require.NoError(t, c.Delete(ctx, "product:2"))

	var got string
	hit, err := c.Get(ctx, "product:2", &got)
	require.NoError(t, err)
	require.False(t, hit)
}
