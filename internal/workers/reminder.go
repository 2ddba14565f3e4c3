// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/togglbot/togglbot/internal/adapter"
	"github.com/togglbot/togglbot/internal/config"
	"github.com/togglbot/togglbot/internal/i18n"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/service"
)

const (
	defaultRemindInterval = time.Hour
	defaultAlertThreshold = 3 * time.Hour

	// failureBackoff is the pause after a whole-scan failure before the
	// regular interval resumes.
	failureBackoff = time.Minute
)

// now is the reminder clock; swapped in tests.
var now = time.Now

// reminderJob periodically scans every registered user for a Toggl entry
// that has been running longer than the alert threshold and pushes a LINE
// warning to its owner. A failure for one user never aborts the scan.
type reminderJob struct {
	credentials service.CredentialsService
	toggl       adapter.TogglClient
	messenger   adapter.Messenger

	interval  time.Duration
	threshold time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewReminderJob(
	credentials service.CredentialsService,
	toggl adapter.TogglClient,
	messenger adapter.Messenger,
	cfg config.Workers,
	logger *logger.Logger,
) Worker {
	interval := cfg.RemindInterval
	if interval <= 0 {
		interval = defaultRemindInterval
	}
	threshold := cfg.RunningAlertThreshold
	if threshold <= 0 {
		threshold = defaultAlertThreshold
	}

	return &reminderJob{
		credentials: credentials,
		toggl:       toggl,
		messenger:   messenger,
		interval:    interval,
		threshold:   threshold,
		logger:      logger,
	}
}

// Run implements [Worker]. It stops any previously running instance, then
// launches the scan loop: one scan immediately, then one per interval. After
// a whole-scan failure the loop waits failureBackoff instead.
func (j *reminderJob) Run(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().
		Dur("interval", j.interval).
		Dur("threshold", j.threshold).
		Msg("reminder worker started")

	go func() {
		defer j.wg.Done()

		for {
			wait := j.interval
			if err := j.scanOnce(jobCtx); err != nil {
				j.logger.Err(err).Str("func", "*reminderJob.Run").Msg("scan failed")
				wait = failureBackoff
			}

			select {
			case <-jobCtx.Done():
				return
			case <-time.After(wait):
			}
		}
	}()
}

// Stop implements [Worker].
func (j *reminderJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// scanOnce checks every registered user once. Per-user errors are logged and
// skipped; only a failure to list the users is returned as a scan failure.
func (j *reminderJob) scanOnce(ctx context.Context) error {
	users, err := j.credentials.ResolveAll(ctx)
	if err != nil {
		return fmt.Errorf("list registered users: %w", err)
	}

	for _, creds := range users {
		entry, err := j.toggl.GetCurrentEntry(ctx, creds)
		if err != nil {
			j.logger.Err(err).
				Str("func", "*reminderJob.scanOnce").
				Str("line_user_id", creds.LineUserID).
				Msg("error checking current entry")
			continue
		}
		if entry == nil || !entry.Running() {
			continue
		}

		elapsed := now().Sub(entry.Start)
		if elapsed <= j.threshold {
			continue
		}

		description := entry.Description
		if description == "" {
			description = i18n.T("not_set")
		}
		message := i18n.TD("reminder_long_running", map[string]any{
			"Description": description,
			"Hours":       int(elapsed.Hours()),
			"Minutes":     int(elapsed.Minutes()) % 60,
		})

		if err = j.messenger.Push(ctx, creds.LineUserID, message); err != nil {
			j.logger.Err(err).
				Str("func", "*reminderJob.scanOnce").
				Str("line_user_id", creds.LineUserID).
				Msg("error pushing reminder")
		}
	}

	return nil
}
