package store

import (
	"context"
	"errors"
	"time"

	"capitaluy-backend/internal/metrics"
)

type instrumented struct {
	Store
}

// Instrument records call counts and latency for every Get and Put.
func Instrument(s Store) Store {
	if _, ok := s.(*instrumented); ok {
		return s
	}
	return &instrumented{Store: s}
}

func (i *instrumented) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	data, err := i.Store.Get(ctx, key)
	i.observe("get", start, err)
	return data, err
}

func (i *instrumented) Put(ctx context.Context, key string, data []byte) error {
	start := time.Now()
	err := i.Store.Put(ctx, key, data)
	i.observe("put", start, err)
	return err
}

func (i *instrumented) observe(op string, start time.Time, err error) {
	result := "ok"
	switch {
	case errors.Is(err, ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}

	driver := i.Store.Name()
	metrics.StoreOperationsTotal.WithLabelValues(driver, op, result).Inc()
	metrics.StoreOperationDuration.WithLabelValues(driver, op).Observe(time.Since(start).Seconds())
}
