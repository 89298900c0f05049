package repositories

import (
	"context"

	"capitaluy-backend/internal/models"
)

type AboutRepository struct {
	Docs *DocumentRepository
}

func NewAboutRepository(docs *DocumentRepository) *AboutRepository {
	return &AboutRepository{Docs: docs}
}

func (r *AboutRepository) Get(ctx context.Context) (models.AboutContent, error) {
	about := models.DefaultAboutContent()
	if err := r.Docs.Load(ctx, AboutContentKey, &about); err != nil {
		return models.AboutContent{}, err
	}
	return about, nil
}

func (r *AboutRepository) Save(ctx context.Context, about models.AboutContent) error {
	return r.Docs.Save(ctx, AboutContentKey, about)
}
