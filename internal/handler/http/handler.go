package http

import (
	"github.com/togglbot/togglbot/internal/adapter"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/service"
)

type Handler struct {
	services *service.Services
	parser   adapter.EventParser

	logger *logger.Logger
}

func NewHandler(services *service.Services, parser adapter.EventParser, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		parser:   parser,
		logger:   logger,
	}
}
