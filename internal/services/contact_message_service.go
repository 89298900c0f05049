package services

import (
	"context"
	"fmt"

	"capitaluy-backend/internal/models"
	"capitaluy-backend/internal/repositories"
)

type ContactMessageService struct {
	Repo *repositories.ContactMessageRepository
	last lastKnown[models.ContactMessage]
}

func NewContactMessageService(repo *repositories.ContactMessageRepository) *ContactMessageService {
	return &ContactMessageService{Repo: repo}
}

func emptyContactMessage() models.ContactMessage {
	return models.ContactMessage{}
}

func (s *ContactMessageService) Get(ctx context.Context) models.ContactMessage {
	return readOrFallback(ctx, "contact_message", &s.last, s.Repo.Get, emptyContactMessage)
}

func (s *ContactMessageService) Update(ctx context.Context, patch map[string]interface{}) (models.ContactMessage, error) {
	current, err := loadForWrite(ctx, s.Repo.Get, emptyContactMessage)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("load contact message: %w", err)
	}

	var merged models.ContactMessage
	if err := mergePatch(current, patch, &merged); err != nil {
		return models.ContactMessage{}, fmt.Errorf("merge contact message: %w", err)
	}

	if err := s.Repo.Save(ctx, merged); err != nil {
		return models.ContactMessage{}, err
	}
	s.last.remember(merged)
	return merged, nil
}
