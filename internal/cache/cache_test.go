package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bundle struct {
	Days  int    `json:"days"`
	Label string `json:"label"`
}

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, "classapp:"), mr
}

func TestRedisCache_RoundTripAndTTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	var got bundle
	assert.ErrorIs(t, c.GetJSON(ctx, "analytics", &got), ErrMiss)

	require.NoError(t, c.SetJSON(ctx, "analytics", bundle{Days: 30, Label: "x"}, time.Minute))
	assert.True(t, mr.Exists("classapp:analytics"))

	require.NoError(t, c.GetJSON(ctx, "analytics", &got))
	assert.Equal(t, 30, got.Days)

	mr.FastForward(2 * time.Minute)
	assert.ErrorIs(t, c.GetJSON(ctx, "analytics", &got), ErrMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "analytics", bundle{Days: 7}, time.Minute))
	require.NoError(t, c.Delete(ctx, "analytics", "absent"))
	assert.False(t, mr.Exists("classapp:analytics"))
}

func TestRedisCache_Counter(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	n, err := c.Counter(ctx, "generation")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = c.Incr(ctx, "generation")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, _ = c.Incr(ctx, "generation")

	n, err = c.Counter(ctx, "generation")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	got, err := mr.Get("classapp:generation")
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	require.NoError(t, mr.Set("classapp:label", "not a number"))
	_, err = c.Counter(ctx, "label")
	assert.Error(t, err)
}

func TestNewRedisFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedisFromURL(context.Background(), "redis://"+mr.Addr()+"/0", "p:")
	require.NoError(t, err)
	defer c.Close()

	_, err = NewRedisFromURL(context.Background(), "::not a url", "p:")
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	var n Cache = NewNoop()
	var got bundle
	assert.NoError(t, n.SetJSON(context.Background(), "k", bundle{}, time.Second))
	assert.ErrorIs(t, n.GetJSON(context.Background(), "k", &got), ErrMiss)
}
