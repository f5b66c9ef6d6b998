package ratelimit

import (
	"context"
	"time"
)

type RateLimiter interface {
	// Allow reports whether the key may proceed within the window, counting
	// this call against the limit.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Reset(ctx context.Context, key string) error
}
