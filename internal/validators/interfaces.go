// SPDX-License-Identifier: Apache-2.0

// Package validators provides input validation for values crossing the
// service boundary, most notably the Toggl credentials a user submits
// at registration.
//
// Implement Validator to encode domain-specific validation logic, inject
// it into services, and call Validate with context, value, and optional
// field names to restrict the check to specific fields.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
