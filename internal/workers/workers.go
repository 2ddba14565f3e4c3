package workers

import (
	"context"

	"github.com/togglbot/togglbot/internal/adapter"
	"github.com/togglbot/togglbot/internal/config"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(
	credentials service.CredentialsService,
	toggl adapter.TogglClient,
	messenger adapter.Messenger,
	cfg config.Workers,
	logger *logger.Logger,
) *Workers {
	return &Workers{
		workers: []Worker{
			NewReminderJob(credentials, toggl, messenger, cfg, logger),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
