package main

import (
	"context"
	"fmt"

	"github.com/togglbot/togglbot/internal/adapter"
	"github.com/togglbot/togglbot/internal/config"
	"github.com/togglbot/togglbot/internal/crypto"
	httphandler "github.com/togglbot/togglbot/internal/handler/http"
	"github.com/togglbot/togglbot/internal/i18n"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/server"
	"github.com/togglbot/togglbot/internal/service"
	"github.com/togglbot/togglbot/internal/store"
	"github.com/togglbot/togglbot/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("togglbot-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	i18n.Init(cfg.App.Language)

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	var (
		parser    adapter.EventParser
		messenger adapter.Messenger
	)
	if cfg.App.TestMode {
		parser = adapter.NewInsecureParser(log)
		messenger = adapter.NewLogMessenger(log)
	} else {
		line, err := adapter.NewLINEAdapter(cfg.Line, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating LINE adapter")
		}
		parser = line
		messenger = line
	}

	toggl := adapter.NewTogglClient(cfg.Toggl, log)
	cipher := crypto.NewTokenCipher(cfg.App.TokenCipherKey)

	services, err := service.NewServices(storages, toggl, messenger, cipher, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	ws := workers.NewWorkers(services.CredentialsService, toggl, messenger, cfg.Workers, log)
	handler := httphandler.NewHandler(services, parser, log)

	srv, err := server.NewServer(handler, ws, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
