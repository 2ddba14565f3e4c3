// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for the two external
// systems togglbot talks to: the LINE Messaging API and the Toggl Track API.
//
// The service layer depends only on the interfaces defined here. The package
// ships a production LINE implementation backed by the official SDK
// ([NewLINEAdapter]) and a test-mode implementation ([NewInsecureParser],
// [NewLogMessenger]) that skips signature verification and logs outbound
// messages instead of delivering them.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrInvalidSignature] for a
// webhook request whose X-Line-Signature does not match).
package adapter

import (
	"context"
	"net/http"
	"time"

	"github.com/togglbot/togglbot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// EventParser extracts text message events from an inbound webhook request.
// Implementations are responsible for request authentication.
type EventParser interface {
	// ParseEvents validates the request and returns the text message events
	// it carries. Returns [ErrInvalidSignature] if the request cannot be
	// attributed to the configured LINE channel. Events of other types
	// (stickers, follows, joins) are silently dropped.
	ParseEvents(r *http.Request) ([]models.MessageEvent, error)
}

// Messenger delivers text messages to LINE users.
type Messenger interface {
	// Reply answers a single webhook event using its one-shot reply token.
	Reply(ctx context.Context, replyToken string, text string) error

	// Push sends an unsolicited message to the user, outside any webhook
	// exchange. Used by the reminder worker.
	Push(ctx context.Context, lineUserID string, text string) error
}

// TogglClient defines the Toggl Track API operations the bot needs. All
// methods authenticate with the API token carried in creds, which must be
// unsealed (creds.APIToken populated) before the call.
type TogglClient interface {
	// GetCurrentEntry returns the entry currently being tracked, or nil if
	// the user is idle.
	GetCurrentEntry(ctx context.Context, creds models.Credentials) (*models.TimeEntry, error)

	// GetProjects lists the projects of the user's workspace.
	GetProjects(ctx context.Context, creds models.Credentials) ([]models.Project, error)

	// StartEntry creates a running time entry and returns it as stored by
	// Toggl.
	StartEntry(ctx context.Context, creds models.Credentials, req models.StartEntryRequest) (models.TimeEntry, error)

	// StopEntry stops the given running entry and returns its final state,
	// with Duration resolved to the elapsed seconds.
	StopEntry(ctx context.Context, creds models.Credentials, entry models.TimeEntry) (models.TimeEntry, error)

	// GetDetailedReport fetches the detailed report rows for the inclusive
	// date range [since, until].
	GetDetailedReport(ctx context.Context, creds models.Credentials, since, until time.Time) (models.DetailedReport, error)
}
