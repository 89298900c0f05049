package services

import (
	"context"
	"fmt"

	"capitaluy-backend/internal/models"
	"capitaluy-backend/internal/repositories"
)

type SiteConfigService struct {
	Repo *repositories.SiteConfigRepository
	last lastKnown[models.SiteConfig]
}

func NewSiteConfigService(repo *repositories.SiteConfigRepository) *SiteConfigService {
	return &SiteConfigService{Repo: repo}
}

// Get returns the stored config with blank fields shown as their defaults.
func (s *SiteConfigService) Get(ctx context.Context) models.SiteConfig {
	cfg := readOrFallback(ctx, "config", &s.last, s.Repo.Get, models.DefaultSiteConfig)
	return cfg.Coalesce(models.DefaultSiteConfig())
}

// Update merges patch over the stored config. Blank fields fall back to defaults.
func (s *SiteConfigService) Update(ctx context.Context, patch map[string]interface{}) (models.SiteConfig, error) {
	current, err := loadForWrite(ctx, s.Repo.Get, models.DefaultSiteConfig)
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("load config: %w", err)
	}

	var merged models.SiteConfig
	if err := mergePatch(current, patch, &merged); err != nil {
		return models.SiteConfig{}, fmt.Errorf("merge config: %w", err)
	}
	merged = merged.Coalesce(models.DefaultSiteConfig())

	if err := s.Repo.Save(ctx, merged); err != nil {
		return models.SiteConfig{}, err
	}
	s.last.remember(merged)
	return merged, nil
}
