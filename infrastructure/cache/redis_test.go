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

type row struct {
	Period string  `json:"period"`
	MRR    float64 `json:"mrr"`
}

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisCache_SetGet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	err := c.Set(ctx, "reports:subscription_mrr:2024-03:month:3", []row{{Period: "2024-01", MRR: 9.99}}, time.Minute)
	require.NoError(t, err)

	var got []row
	hit, err := c.Get(ctx, "reports:subscription_mrr:2024-03:month:3", &got)

	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []row{{Period: "2024-01", MRR: 9.99}}, got)
	assert.Equal(t, time.Minute, mr.TTL("reports:subscription_mrr:2024-03:month:3"))
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	var got []row
	hit, err := c.Get(context.Background(), "reports:inexistente", &got)

	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, got)
}

func TestRedisCache_Expired(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "reports:k", row{Period: "2024-01"}, time.Second))
	mr.FastForward(2 * time.Second)

	var got row
	hit, err := c.Get(ctx, "reports:k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCache_InvalidPayload(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("reports:corrompido", "{nao-e-json"))

	var got row
	hit, err := c.Get(context.Background(), "reports:corrompido", &got)

	assert.Error(t, err)
	assert.False(t, hit)
}

func TestRedisCache_InvalidatePrefix(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, ReportKeyPrefix+"revenue_trend:a", row{}, time.Minute))
	require.NoError(t, c.Set(ctx, ReportKeyPrefix+"customer_churn:b", row{}, time.Minute))
	require.NoError(t, mr.Set("sessions:1", "x"))

	removed, err := c.InvalidatePrefix(ctx, ReportKeyPrefix)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.True(t, mr.Exists("sessions:1"))
	assert.False(t, mr.Exists(ReportKeyPrefix+"revenue_trend:a"))
}

func TestRedisCache_Ping(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, c.Ping(context.Background()))

	mr.Close()
	assert.Error(t, c.Ping(context.Background()))
}
