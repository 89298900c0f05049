package services

import (
	"context"
	"fmt"

	"capitaluy-backend/internal/models"
	"capitaluy-backend/internal/repositories"
)

type AboutService struct {
	Repo *repositories.AboutRepository
	last lastKnown[models.AboutContent]
}

func NewAboutService(repo *repositories.AboutRepository) *AboutService {
	return &AboutService{Repo: repo}
}

func (s *AboutService) Get(ctx context.Context) models.AboutContent {
	return readOrFallback(ctx, "about", &s.last, s.Repo.Get, models.DefaultAboutContent)
}

func (s *AboutService) Update(ctx context.Context, patch map[string]interface{}) (models.AboutContent, error) {
	current, err := loadForWrite(ctx, s.Repo.Get, models.DefaultAboutContent)
	if err != nil {
		return models.AboutContent{}, fmt.Errorf("load about: %w", err)
	}

	var merged models.AboutContent
	if err := mergePatch(current, patch, &merged); err != nil {
		return models.AboutContent{}, fmt.Errorf("merge about: %w", err)
	}

	if err := s.Repo.Save(ctx, merged); err != nil {
		return models.AboutContent{}, err
	}
	s.last.remember(merged)
	return merged, nil
}
