package cache

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound key 不存在，各實作要把底層的 not found 轉成這個錯誤
var ErrKeyNotFound = errors.New("cache key not found")

// Cache 購物車快照用的字串 key-value 快取
type Cache interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
