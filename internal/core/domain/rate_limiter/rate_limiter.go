package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Interval is the length of one counting window.
type Interval struct {
	value time.Duration
}

var (
	Minute = Interval{value: time.Minute}
	Hour   = Interval{value: time.Hour}
)

func (i Interval) Duration() time.Duration {
	return i.value
}

type Limit struct {
	Value    uint16
	Interval Interval
}

// Result of a limit check. RetryAfter is the time left in the current window
// of a rejected check, zero when unknown.
type Result struct {
	IsAllowed  bool
	RetryAfter time.Duration
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed() Result {
	return Result{IsAllowed: false}
}

func NotAllowedFor(retryAfter time.Duration) Result {
	return Result{IsAllowed: false, RetryAfter: retryAfter}
}

// ExceededError reports a rejected request. It matches ErrRateLimitExceeded.
type ExceededError struct {
	Key        string
	Limit      Limit
	RetryAfter time.Duration
}

func (err *ExceededError) Error() string {
	return fmt.Sprintf("%s: %d per %s", ErrRateLimitExceeded, err.Limit.Value, err.Limit.Interval.Duration())
}

func (err *ExceededError) Is(target error) bool {
	return target == ErrRateLimitExceeded
}

type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
