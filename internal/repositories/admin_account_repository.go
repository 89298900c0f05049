package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"capitaluy-backend/internal/models"
)

// AdminAccountRepository holds the single admin credential.
// The document is never served through the read cache.
type AdminAccountRepository struct {
	Docs *DocumentRepository
}

func NewAdminAccountRepository(docs *DocumentRepository) *AdminAccountRepository {
	return &AdminAccountRepository{Docs: docs}
}

func (r *AdminAccountRepository) Get(ctx context.Context) (*models.AdminAccount, error) {
	data, err := r.Docs.Store.Get(ctx, AdminAccountKey)
	if err != nil {
		return nil, err
	}

	account := &models.AdminAccount{}
	if err := json.Unmarshal(data, account); err != nil {
		return nil, fmt.Errorf("decode %s: %w", AdminAccountKey, err)
	}
	return account, nil
}

func (r *AdminAccountRepository) Save(ctx context.Context, account *models.AdminAccount) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}
	return r.Docs.Store.Put(ctx, AdminAccountKey, data)
}
