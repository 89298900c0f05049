// Package store holds the document stores each resource is persisted to.
// A document is one JSON value addressed by a slash-separated key such as
// "config/site"; every driver implements whole-document get and put only.
package store

import (
	"context"
	"errors"
	"fmt"

	"capitaluy-backend/internal/config"
)

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("document not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Ping(ctx context.Context) error
	Close() error
	Name() string
}

// Driver names accepted by store.driver
const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverS3       = "s3"
)

// Open connects the configured driver and wraps it with metrics.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	var (
		s   Store
		err error
	)

	switch cfg.Store.Driver {
	case DriverMemory, "":
		s = NewMemoryStore()
	case DriverBolt:
		s, err = NewBoltStore(cfg.Store.Bolt.Path)
	case DriverPostgres:
		s, err = NewPostgresStore(ctx, cfg.PostgresDSN())
	case DriverRedis:
		s, err = NewRedisStore(ctx, RedisOptions{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
			Prefix:   cfg.Store.Redis.Prefix,
		})
	case DriverS3:
		s, err = NewS3Store(ctx, S3Options{
			Bucket:    cfg.Store.S3.Bucket,
			Region:    cfg.Store.S3.Region,
			Endpoint:  cfg.Store.S3.Endpoint,
			AccessKey: cfg.Store.S3.AccessKey,
			SecretKey: cfg.Store.S3.SecretKey,
			Prefix:    cfg.Store.S3.Prefix,
			PathStyle: cfg.Store.S3.PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}

	return Instrument(s), nil
}
