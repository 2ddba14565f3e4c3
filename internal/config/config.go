// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the togglbot
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token cipher key,
	// reply language, and the application version.
	App App

	// Line holds the LINE messaging platform channel credentials.
	// The env variable names are fixed by the platform integration docs
	// and are deliberately unprefixed.
	Line Line

	// Toggl holds the Toggl Track API endpoints and client timeout.
	Toggl Toggl `envPrefix:"TOGGL_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for the background reminder worker.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenCipherKey is the secret used to derive the AES key that seals
	// stored Toggl API tokens. Must be kept confidential.
	// Env: APP_TOKEN_CIPHER_KEY
	TokenCipherKey string `env:"APP_TOKEN_CIPHER_KEY"`

	// TestMode disables webhook signature verification and outbound LINE
	// delivery so the service can be exercised locally without real
	// channel credentials. Replies are logged instead of sent.
	// Env: TEST_MODE
	TestMode bool `env:"TEST_MODE"`

	// Language selects the locale for user-facing reply strings
	// (e.g. "ja", "en"). Defaults to "ja".
	// Env: APP_LANGUAGE
	Language string `env:"APP_LANGUAGE"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`
}

// Line holds the LINE channel credentials issued by the platform.
type Line struct {
	// ChannelSecret is the HMAC key used to verify webhook signatures.
	// Env: LINE_CHANNEL_SECRET
	ChannelSecret string `env:"LINE_CHANNEL_SECRET"`

	// ChannelAccessToken authenticates outbound Messaging API calls.
	// Env: LINE_CHANNEL_ACCESS_TOKEN
	ChannelAccessToken string `env:"LINE_CHANNEL_ACCESS_TOKEN"`
}

// Toggl holds the Toggl Track API client settings.
type Toggl struct {
	// BaseURL is the Toggl Track API v9 base URL.
	// Env: TOGGL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ReportsURL is the endpoint of the detailed report API.
	// Env: TOGGL_REPORTS_URL
	ReportsURL string `env:"REPORTS_URL"`

	// RequestTimeout bounds a single outbound Toggl API call.
	// Env: TOGGL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a "postgres://..." URI opens PostgreSQL via
	// pgx; anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background reminder worker.
type Workers struct {
	// RemindInterval is how often registered users are scanned for
	// long-running entries.
	// Env: WORKERS_REMIND_INTERVAL
	RemindInterval time.Duration `env:"REMIND_INTERVAL"`

	// RunningAlertThreshold is how long an entry may run before the bot
	// pushes a warning message.
	// Env: WORKERS_RUNNING_ALERT_THRESHOLD
	RunningAlertThreshold time.Duration `env:"RUNNING_ALERT_THRESHOLD"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
