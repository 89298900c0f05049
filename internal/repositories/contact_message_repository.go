package repositories

import (
	"context"

	"capitaluy-backend/internal/models"
)

type ContactMessageRepository struct {
	Docs *DocumentRepository
}

func NewContactMessageRepository(docs *DocumentRepository) *ContactMessageRepository {
	return &ContactMessageRepository{Docs: docs}
}

func (r *ContactMessageRepository) Get(ctx context.Context) (models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := r.Docs.Load(ctx, ContactMessageKey, &msg); err != nil {
		return models.ContactMessage{}, err
	}
	return msg, nil
}

func (r *ContactMessageRepository) Save(ctx context.Context, msg models.ContactMessage) error {
	return r.Docs.Save(ctx, ContactMessageKey, msg)
}
