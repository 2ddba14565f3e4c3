package service

import (
	"context"

	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/store"
	"github.com/togglbot/togglbot/models"
)

type usageService struct {
	usageRepository store.UsageRepository

	logger *logger.Logger
}

func NewUsageService(usageRepository store.UsageRepository, logger *logger.Logger) UsageService {
	return &usageService{
		usageRepository: usageRepository,
		logger:          logger,
	}
}

func (s *usageService) Record(ctx context.Context, lineUserID string) error {
	return s.usageRepository.RecordUsage(ctx, lineUserID)
}

func (s *usageService) List(ctx context.Context, filter models.UsageFilter) ([]models.Usage, error) {
	return s.usageRepository.ListUsage(ctx, filter)
}
