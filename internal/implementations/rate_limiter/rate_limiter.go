package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/logging"
	ratelimiter "schedtext/internal/core/domain/rate_limiter"
	"time"

	"github.com/go-redis/redis/v9"
)

const keyPrefix = "schedtext::rate-limit"

// Redis is a fixed window rate limiter. Every key counts requests in windows
// of the limit interval; a window expires once it is over.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
	now         func() time.Time
}

func NewRedis(redisClient *redis.Client, log logging.Logger, now func() time.Time) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Redis{redisClient: redisClient, log: log, now: now}
}

func (r *Redis) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	d := limit.Interval.Duration()
	if d <= 0 {
		panic("invalid rate limiting interval")
	}
	now := r.now()
	k := windowKey(key, now, d)

	cmds, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, d)
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return ratelimiter.NotAllowed()
	}
	if err != nil {
		r.log.Error(
			ctx,
			"Could not check rate limit due to Redis client error.",
			logging.Entry("key", key),
			logging.Entry("err", err),
		)
		return ratelimiter.Allowed()
	}
	intCmd := cmds[0].(*redis.IntCmd)
	if intCmd.Val() > int64(limit.Value) {
		return ratelimiter.NotAllowedFor(windowLeft(now, d))
	}
	return ratelimiter.Allowed()
}

// windowLeft is the time until the window now falls in is over.
func windowLeft(now time.Time, window time.Duration) time.Duration {
	seconds := int64(window.Seconds())
	end := time.Unix((now.Unix()/seconds+1)*seconds, 0)
	return end.Sub(now)
}

func windowKey(key string, now time.Time, window time.Duration) string {
	return fmt.Sprintf("%s::%s::%d", keyPrefix, key, now.Unix()/int64(window.Seconds()))
}
