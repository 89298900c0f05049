package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DocumentKeyPrefix namespaces cached documents so a shared redis can host them.
const DocumentKeyPrefix = "doc:"

var client *redis.Client

// Init initializes the Redis connection. On failure the package stays disabled
// and every helper below becomes a no-op.
func Init(addr, password string, db int) error {
	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// SetClient replaces the package client; nil disables caching.
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the Redis client
func GetClient() *redis.Client {
	return client
}

// Enabled reports whether a client is configured.
func Enabled() bool {
	return client != nil
}

// DocumentKey returns the cache key for a store document.
func DocumentKey(key string) string {
	return DocumentKeyPrefix + key
}

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL, replacing any cached value
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, data, ttl).Err()
}

// FillCached stores data only when the key is not cached yet, so a slow
// reader never overwrites a value a writer has already published.
func FillCached(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	return client.SetNX(ctx, key, data, ttl).Err()
}

// InvalidatePattern removes all keys matching a glob pattern
func InvalidatePattern(ctx context.Context, pattern string) {
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateKeys removes specific cache keys
func InvalidateKeys(ctx context.Context, keys ...string) error {
	if client == nil || len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}

// InvalidateAllDocuments clears every cached document.
// Called after bulk resets that bypass the repositories.
func InvalidateAllDocuments(ctx context.Context) {
	InvalidatePattern(ctx, DocumentKeyPrefix+"*")
}

// IsHealthy returns true if Redis connection is working
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}

// Close shuts the client down.
func Close() {
	if client == nil {
		return
	}
	client.Close()
	client = nil
}
