package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capitaluy-backend/internal/cache"
	"capitaluy-backend/internal/models"
	"capitaluy-backend/internal/store"
)

type failingStore struct {
	*store.MemoryStore
	failGet bool
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet {
		return nil, errors.New("store offline")
	}
	return f.MemoryStore.Get(ctx, key)
}

func TestSiteConfigRepositoryFillsMissingFields(t *testing.T) {
	mem := store.NewMemoryStore()
	require.NoError(t, mem.Put(context.Background(), SiteConfigKey, []byte(`{"email":"hola@capitaluy.com"}`)))

	repo := NewSiteConfigRepository(NewDocumentRepository(mem, 0))
	cfg, err := repo.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "hola@capitaluy.com", cfg.Email)
	assert.Equal(t, models.DefaultSiteConfig().WhatsappNumber, cfg.WhatsappNumber)
}

func TestRepositoriesReportMissingDocuments(t *testing.T) {
	docs := NewDocumentRepository(store.NewMemoryStore(), 0)
	ctx := context.Background()

	_, err := NewCourseRepository(docs).List(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = NewCryptoPriceRepository(docs).List(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = NewAdminAccountRepository(docs).Get(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCourseRepositoryRoundTrip(t *testing.T) {
	repo := NewCourseRepository(NewDocumentRepository(store.NewMemoryStore(), 0))
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, models.DefaultCourses()))
	courses, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCourses(), courses)
}

func TestDocumentCacheServesReadsAndIsWrittenOnSave(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, cache.Init(mr.Addr(), "", 0))
	defer cache.Close()

	backing := &failingStore{MemoryStore: store.NewMemoryStore()}
	docs := NewDocumentRepository(backing, time.Minute)
	repo := NewContactMessageRepository(docs)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, models.ContactMessage{Title: "Aviso", Body: "Cerrado el lunes"}))
	assert.True(t, mr.Exists(cache.DocumentKey(ContactMessageKey)))

	// Reads refill an evicted entry
	mr.Del(cache.DocumentKey(ContactMessageKey))
	msg, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Aviso", msg.Title)
	assert.True(t, mr.Exists(cache.DocumentKey(ContactMessageKey)))

	// Cached copy answers while the store is down
	backing.failGet = true
	msg, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cerrado el lunes", msg.Body)

	backing.failGet = false
	require.NoError(t, repo.Save(ctx, models.ContactMessage{Title: "Nuevo"}))

	backing.failGet = true
	msg, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", msg.Title)
}

// interleavedStore runs afterGet once, between reading a document and
// returning it, to model a write landing while a read is in flight.
type interleavedStore struct {
	*store.MemoryStore
	afterGet func()
}

func (s *interleavedStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.MemoryStore.Get(ctx, key)
	if f := s.afterGet; f != nil {
		s.afterGet = nil
		f()
	}
	return data, err
}

func TestSlowReadDoesNotCacheOverNewerWrite(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, cache.Init(mr.Addr(), "", 0))
	defer cache.Close()

	backing := &interleavedStore{MemoryStore: store.NewMemoryStore()}
	docs := NewDocumentRepository(backing, time.Minute)
	repo := NewContactMessageRepository(docs)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, models.ContactMessage{Title: "Viejo"}))
	mr.Del(cache.DocumentKey(ContactMessageKey))

	backing.afterGet = func() {
		require.NoError(t, repo.Save(ctx, models.ContactMessage{Title: "Nuevo"}))
	}
	msg, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Viejo", msg.Title)

	cached, err := mr.Get(cache.DocumentKey(ContactMessageKey))
	require.NoError(t, err)
	assert.Contains(t, cached, "Nuevo")

	msg, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", msg.Title)
}

func TestAdminAccountRepositoryBypassesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, cache.Init(mr.Addr(), "", 0))
	defer cache.Close()

	repo := NewAdminAccountRepository(NewDocumentRepository(store.NewMemoryStore(), time.Minute))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.AdminAccount{Username: "ana", PasswordHash: "x"}))
	account, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ana", account.Username)
	assert.Empty(t, mr.Keys())
}

func TestResetToDefaultsKeepsAdminAccount(t *testing.T) {
	mem := store.NewMemoryStore()
	docs := NewDocumentRepository(mem, 0)
	ctx := context.Background()

	admins := NewAdminAccountRepository(docs)
	require.NoError(t, admins.Save(ctx, &models.AdminAccount{Username: "ana"}))
	require.NoError(t, NewCourseRepository(docs).SaveAll(ctx, nil))

	require.NoError(t, ResetToDefaults(ctx, docs, "2024-03-01T12:00:00-03:00"))

	courses, err := NewCourseRepository(docs).List(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 3)

	prices, err := NewCryptoPriceRepository(docs).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCryptoPrices("2024-03-01T12:00:00-03:00"), prices)

	account, err := admins.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ana", account.Username)
}
