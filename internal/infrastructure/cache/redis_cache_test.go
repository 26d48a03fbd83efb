package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/infrastructure/cache"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopCache(t *testing.T) {
	c := cache.NoopCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "org", &dto.DashboardResponse{MonthLabel: "Octubre 2026"}))
	got, err := c.Get(ctx, "org")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Invalidate(ctx, "org"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "dashboard:org-1", cache.Key("org-1"))
}

// Requiere un Redis real: REDIS_ADDR=localhost:6379 go test ./internal/infrastructure/cache/...
func TestRedisDashboardCache(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR no definido")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	ctx := context.Background()
	require.NoError(t, rdb.Ping(ctx).Err())

	c := cache.NewRedisDashboardCache(rdb, time.Minute)
	org := "test-" + time.Now().Format("150405.000000")

	got, err := c.Get(ctx, org)
	require.NoError(t, err)
	assert.Nil(t, got)

	in := &dto.DashboardResponse{
		Metrics:    dto.DashboardMetrics{Sales: decimal.RequireFromString("1160.50"), OrdersCount: 2},
		MonthLabel: "Octubre 2026",
	}
	require.NoError(t, c.Set(ctx, org, in))
	got, err = c.Get(ctx, org)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Metrics.Sales.Equal(in.Metrics.Sales))
	assert.Equal(t, "Octubre 2026", got.MonthLabel)

	ttl, err := rdb.TTL(ctx, cache.Key(org)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Invalidate(ctx, org))
	got, err = c.Get(ctx, org)
	require.NoError(t, err)
	assert.Nil(t, got)
}
