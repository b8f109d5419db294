package parsecache

import (
	"context"
	"os"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	require.Equal(t, cacheKey("every 5 minutes"), cacheKey("  Every 5 MINUTES "))
	require.NotEqual(t, cacheKey("every 5 minutes"), cacheKey("every 6 minutes"))
	require.Contains(t, cacheKey("weekdays"), keyPrefix)
}

func TestRedisParseCache(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL is not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer client.Close()

	cache := NewRedis(client, time.Minute)
	ctx := context.Background()
	text := "every 5 minutes " + time.Now().Format(time.RFC3339Nano)

	_, err = cache.Get(ctx, text)
	require.ErrorIs(t, err, schedule.ErrCacheMiss)

	result := recurrence.Result{
		Schedules:  []recurrence.ConstraintSet{{"m": {0, 5, 10}}},
		Exceptions: []recurrence.ConstraintSet{},
		Error:      recurrence.NoError,
	}
	require.NoError(t, cache.Set(ctx, text, result))

	cached, err := cache.Get(ctx, text)
	require.NoError(t, err)
	require.Equal(t, result, cached)
}
