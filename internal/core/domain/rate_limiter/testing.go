package ratelimiter

import (
	"context"
	"sync"
)

type TestRateLimiter struct {
	DoNotAllow  bool
	CheckedKeys []string
	lock        sync.Mutex
}

func NewTestRateLimiter() *TestRateLimiter {
	return &TestRateLimiter{}
}

func (r *TestRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.CheckedKeys = append(r.CheckedKeys, key)
	if r.DoNotAllow {
		return NotAllowed()
	}
	return Allowed()
}
