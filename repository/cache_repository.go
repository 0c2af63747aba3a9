package repository

import (
	"context"
	"time"
)

// CacheRepository stores serialized deal analyses keyed by input hash.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
