// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/togglbot/togglbot/internal/config"
	httphandler "github.com/togglbot/togglbot/internal/handler/http"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	logger *logger.Logger
}

// NewServer wires the HTTP handler and background workers into a runnable
// server. It fails when no HTTP listen address is configured.
func NewServer(handler *httphandler.Handler, ws *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	log := logger.GetChildLogger()

	if cfg.HTTPAddress == "" {
		log.Error().Str("func", "NewServer").Msg("no HTTP address configured")
		return nil, errNoHTTPAddress
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, log),
		workers:    ws,
		logger:     log,
	}, nil
}

func (s *server) RunServer() {
	s.run()
}

func (s *server) Shutdown() {
	s.workers.Stop()
	s.httpServer.Shutdown()
}

func (s *server) run() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	idleConnectionsClosed := make(chan struct{})

	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.workers.Run(ctx)

	s.logger.Info().Str("func", "*server.run").
		Str("address", s.httpServer.server.Addr).
		Msg("starting HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Str("func", "*server.run").Msg("server Shutdown gracefully")
}
