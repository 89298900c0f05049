package services

import (
	"context"
	"errors"
	"testing"

	"capitaluy-backend/internal/repositories"
	"capitaluy-backend/internal/store"
)

var errStoreDown = errors.New("store offline")

// flakyStore is a memory store whose reads and writes can be made to fail.
type flakyStore struct {
	*store.MemoryStore
	failGet bool
	failPut bool
	puts    int
}

func newFlakyStore() *flakyStore {
	return &flakyStore{MemoryStore: store.NewMemoryStore()}
}

func (f *flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet {
		return nil, errStoreDown
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *flakyStore) Put(ctx context.Context, key string, data []byte) error {
	if f.failPut {
		return errStoreDown
	}
	f.puts++
	return f.MemoryStore.Put(ctx, key, data)
}

func newDocs(t *testing.T) (*repositories.DocumentRepository, *flakyStore) {
	t.Helper()
	s := newFlakyStore()
	return repositories.NewDocumentRepository(s, 0), s
}
