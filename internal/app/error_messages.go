// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidSignature is returned when a webhook delivery carries an
	// X-Line-Signature header that does not verify against the channel
	// secret.
	MsgInvalidSignature = "invalid signature"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidQueryParameter is returned when a query parameter cannot be
	// parsed (e.g. a malformed timestamp or a non-numeric limit).
	MsgInvalidQueryParameter = "invalid query parameter"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
