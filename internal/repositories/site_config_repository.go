package repositories

import (
	"context"

	"capitaluy-backend/internal/models"
)

type SiteConfigRepository struct {
	Docs *DocumentRepository
}

func NewSiteConfigRepository(docs *DocumentRepository) *SiteConfigRepository {
	return &SiteConfigRepository{Docs: docs}
}

// Get returns the stored config with defaults under any field the document lacks.
func (r *SiteConfigRepository) Get(ctx context.Context) (models.SiteConfig, error) {
	cfg := models.DefaultSiteConfig()
	if err := r.Docs.Load(ctx, SiteConfigKey, &cfg); err != nil {
		return models.SiteConfig{}, err
	}
	return cfg, nil
}

func (r *SiteConfigRepository) Save(ctx context.Context, cfg models.SiteConfig) error {
	return r.Docs.Save(ctx, SiteConfigKey, cfg)
}
