package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingLineCredentials indicates that LINE_CHANNEL_SECRET or
	// LINE_CHANNEL_ACCESS_TOKEN is unset while test mode is off.
	ErrMissingLineCredentials = errors.New("LINE channel credentials are not set")
	// ErrMissingTokenCipherKey indicates that no secret was provided for
	// sealing stored Toggl API tokens.
	ErrMissingTokenCipherKey = errors.New("token cipher key is not set")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing address or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive scan interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
