package parsecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	"strings"
	"time"

	"github.com/go-redis/redis/v9"
)

const keyPrefix = "schedtext::parse"

// Redis caches parse results by normalized query text.
type Redis struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedis(redisClient *redis.Client, ttl time.Duration) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	return &Redis{redisClient: redisClient, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, text string) (result recurrence.Result, err error) {
	raw, err := r.redisClient.Get(ctx, cacheKey(text)).Bytes()
	if errors.Is(err, redis.Nil) {
		return result, schedule.ErrCacheMiss
	}
	if err != nil {
		return result, fmt.Errorf("could not read cached parse result: %w", err)
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("could not decode cached parse result: %w", err)
	}
	return result, nil
}

func (r *Redis) Set(ctx context.Context, text string, result recurrence.Result) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not encode parse result: %w", err)
	}
	if err := r.redisClient.Set(ctx, cacheKey(text), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("could not cache parse result: %w", err)
	}
	return nil
}

// cacheKey maps texts that parse identically to the same key.
func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(text))))
	return keyPrefix + "::" + hex.EncodeToString(sum[:])
}
