package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type FakeRateLimiter struct {
	IsAllowed  bool
	RetryAfter time.Duration
	Checked    []string
	lock       sync.Mutex
}

func NewFakeRateLimiter(isAllowed bool) *FakeRateLimiter {
	return &FakeRateLimiter{IsAllowed: isAllowed}
}

func (rl *FakeRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	rl.lock.Lock()
	defer rl.lock.Unlock()
	rl.Checked = append(rl.Checked, key)
	if rl.IsAllowed {
		return Allowed()
	}
	return NotAllowedFor(rl.RetryAfter)
}
