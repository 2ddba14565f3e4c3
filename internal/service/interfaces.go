// SPDX-License-Identifier: Apache-2.0

// Package service implements the bot's application logic: credential
// registration and unsealing, Toggl tracking operations, chat command
// dispatch, usage accounting, and report rendering. It sits between the
// transport adapters and the storage layer.
package service

import (
	"context"

	"github.com/togglbot/togglbot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialsService manages the link between a LINE user and a Toggl
// account. The API token is sealed before it reaches storage and unsealed on
// the way out, so values returned from this service always carry the
// plaintext token in APIToken.
type CredentialsService interface {
	// Register seals creds.APIToken and upserts the record. UserName is
	// truncated to 50 characters.
	Register(ctx context.Context, creds models.Credentials) (models.Credentials, error)

	// Resolve loads and unseals the record for the given LINE user.
	// Returns store.ErrNoCredentialsFound for unregistered users.
	Resolve(ctx context.Context, lineUserID string) (models.Credentials, error)

	// ResolveAll loads and unseals every registered record. Records that
	// fail to unseal are skipped with a log entry so one corrupt row does
	// not take down a whole reminder scan.
	ResolveAll(ctx context.Context) ([]models.Credentials, error)
}

// TrackingService executes time tracking operations against Toggl on behalf
// of an unsealed credentials record.
type TrackingService interface {
	// Start begins a time entry in the named project. The project name is
	// matched case-insensitively against the workspace's project list;
	// ErrProjectNotFound is returned when no project matches. The
	// description is truncated to 255 characters.
	Start(ctx context.Context, creds models.Credentials, projectName, description string) (models.TimeEntry, error)

	// Stop stops the currently running entry and returns its final state.
	// Returns (nil, nil) when nothing is running.
	Stop(ctx context.Context, creds models.Credentials) (*models.TimeEntry, error)

	// Status returns the currently running entry, or nil when idle.
	Status(ctx context.Context, creds models.Credentials) (*models.TimeEntry, error)

	// Report fetches the detailed report covering the last days days,
	// ending now.
	Report(ctx context.Context, creds models.Credentials, days int) (models.DetailedReport, error)
}

// CommandService turns an inbound chat message into a localized reply.
type CommandService interface {
	// Execute parses text, runs the command, and returns the reply to send
	// back. Errors are rendered into the reply; Execute itself never fails.
	Execute(ctx context.Context, lineUserID, text string) string
}

// BotService processes one webhook message event end to end.
type BotService interface {
	// HandleEvent records usage, executes the command, and replies.
	HandleEvent(ctx context.Context, event models.MessageEvent) error
}

// UsageService exposes the per-user interaction counters.
type UsageService interface {
	Record(ctx context.Context, lineUserID string) error
	List(ctx context.Context, filter models.UsageFilter) ([]models.Usage, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
