package store

import (
	"context"

	"github.com/togglbot/togglbot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialsRepository persists the Toggl account linked to each LINE user.
type CredentialsRepository interface {
	// UpsertCredentials inserts the record or overwrites an existing one
	// for the same LINE user, and returns the stored state.
	UpsertCredentials(ctx context.Context, creds models.Credentials) (models.Credentials, error)

	// GetCredentials looks up the record for the given LINE user.
	// Returns ErrNoCredentialsFound when the user never registered.
	GetCredentials(ctx context.Context, lineUserID string) (models.Credentials, error)

	// ListCredentials returns all registered users. Used by the reminder
	// worker to scan for long-running entries.
	ListCredentials(ctx context.Context) ([]models.Credentials, error)
}

// UsageRepository tracks per-user interaction counters.
type UsageRepository interface {
	// RecordUsage increments the message counter for the given LINE user
	// and stamps the interaction time, creating the row on first use.
	RecordUsage(ctx context.Context, lineUserID string) error

	// ListUsage returns usage rows matching the filter, most recent first.
	ListUsage(ctx context.Context, filter models.UsageFilter) ([]models.Usage, error)
}
