package services

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"capitaluy-backend/internal/metrics"
	"capitaluy-backend/internal/store"
)

// lastKnown holds the most recent value this process read from or wrote to
// the store, used to answer reads while the store is failing.
type lastKnown[T any] struct {
	mu    sync.RWMutex
	value T
	set   bool
}

func (l *lastKnown[T]) remember(v T) {
	l.mu.Lock()
	l.value = v
	l.set = true
	l.mu.Unlock()
}

func (l *lastKnown[T]) get() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.value, l.set
}

// readOrFallback loads a resource for a public GET. A missing document yields
// the default; any other failure yields the last known value or the default.
func readOrFallback[T any](ctx context.Context, resource string, last *lastKnown[T], load func(context.Context) (T, error), def func() T) T {
	v, err := load(ctx)
	if err == nil {
		last.remember(v)
		return v
	}
	if errors.Is(err, store.ErrNotFound) {
		return def()
	}

	zap.S().Warnw("[Store] read failed, serving fallback", "resource", resource, "error", err)
	metrics.ReadFallbacksTotal.WithLabelValues(resource).Inc()
	if prev, ok := last.get(); ok {
		return prev
	}
	return def()
}

// loadForWrite loads the value a mutation starts from. Only a missing
// document falls back to the default, so a read failure never lets defaults
// overwrite stored data.
func loadForWrite[T any](ctx context.Context, load func(context.Context) (T, error), def func() T) (T, error) {
	v, err := load(ctx)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return def(), nil
	}
	var zero T
	return zero, err
}
