package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"capitaluy-backend/internal/cache"
	"capitaluy-backend/internal/store"
)

// Document keys, one per resource
const (
	SiteConfigKey     = "config/site"
	AboutContentKey   = "content/about"
	CoursesKey        = "catalog/courses"
	CryptoPricesKey   = "prices/cryptos"
	ContactMessageKey = "content/contact_message"
	AdminAccountKey   = "admin/account"
)

// AllDocumentKeys lists every key the service writes.
var AllDocumentKeys = []string{
	SiteConfigKey,
	AboutContentKey,
	CoursesKey,
	CryptoPricesKey,
	ContactMessageKey,
	AdminAccountKey,
}

// DocumentRepository reads and writes JSON documents through the redis
// read cache (when enabled) into the configured store.
type DocumentRepository struct {
	Store    store.Store
	CacheTTL time.Duration
}

func NewDocumentRepository(s store.Store, cacheTTL time.Duration) *DocumentRepository {
	return &DocumentRepository{Store: s, CacheTTL: cacheTTL}
}

// Load decodes the document at key into out. A missing document returns
// store.ErrNotFound and leaves out untouched.
func (r *DocumentRepository) Load(ctx context.Context, key string, out interface{}) error {
	cacheKey := cache.DocumentKey(key)
	if data, ok := cache.GetCached(ctx, cacheKey); ok {
		if err := json.Unmarshal(data, out); err == nil {
			return nil
		}
		cache.InvalidateKeys(ctx, cacheKey)
	}

	data, err := r.Store.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}

	cache.FillCached(ctx, cacheKey, data, r.CacheTTL)
	return nil
}

// Save writes v to the store, then publishes the same bytes to the cache so
// the next read sees them even if a concurrent reader is refilling the key.
func (r *DocumentRepository) Save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := r.Store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	cacheKey := cache.DocumentKey(key)
	if err := cache.SetCached(ctx, cacheKey, data, r.CacheTTL); err != nil {
		zap.S().Warnw("[Cache] write-through failed", "key", key, "error", err)
		if err := cache.InvalidateKeys(ctx, cacheKey); err != nil {
			zap.S().Errorw("[Cache] stale document may be served", "key", key, "error", err)
		}
	}
	return nil
}
