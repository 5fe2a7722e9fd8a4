// Package cache stores short-lived AI results. Redis backs it when REDIS_URL
// is configured; otherwise an in-process map is used.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-valued key/value store with per-entry expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

const keyPrefix = "annadata:"
