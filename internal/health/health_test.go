package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"capitaluy-backend/internal/store"
)

type downStore struct {
	*store.MemoryStore
}

func (downStore) Ping(context.Context) error { return errors.New("unreachable") }

func TestCheckBasic(t *testing.T) {
	status := NewHealthChecker(store.NewMemoryStore()).CheckBasic(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "memory", status.Store.Driver)

	status = NewHealthChecker(downStore{store.NewMemoryStore()}).CheckBasic(context.Background())
	assert.Equal(t, "unhealthy", status.Status)
}

func TestCheckDetailed(t *testing.T) {
	status := NewHealthChecker(store.NewMemoryStore()).CheckDetailed(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "disabled", status.Cache)
	assert.NotEmpty(t, status.Uptime)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512.0 MB", formatBytes(512*1024*1024))
	assert.Equal(t, "2.0 GB", formatBytes(2*1024*1024*1024))
}
