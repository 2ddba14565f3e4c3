package service

import (
	"github.com/togglbot/togglbot/internal/adapter"
	"github.com/togglbot/togglbot/internal/config"
	"github.com/togglbot/togglbot/internal/crypto"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/store"
	"github.com/togglbot/togglbot/internal/validators"
)

type Services struct {
	CredentialsService CredentialsService
	TrackingService    TrackingService
	CommandService     CommandService
	BotService         BotService
	UsageService       UsageService
	AppInfoService     AppInfoService
}

func NewServices(
	storages *store.Storages,
	toggl adapter.TogglClient,
	messenger adapter.Messenger,
	cipher crypto.TokenCipher,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	credentialsService := NewCredentialsService(storages.CredentialsRepository, cipher, validators.NewCredentialsValidator(), logger)
	trackingService := NewTrackingService(toggl, logger)
	usageService := NewUsageService(storages.UsageRepository, logger)
	commandService := NewCommandService(credentialsService, trackingService, logger)
	botService := NewBotService(commandService, usageService, messenger, logger)

	return &Services{
		CredentialsService: credentialsService,
		TrackingService:    trackingService,
		CommandService:     commandService,
		BotService:         botService,
		UsageService:       usageService,
		AppInfoService:     appInfoService,
	}, nil
}
