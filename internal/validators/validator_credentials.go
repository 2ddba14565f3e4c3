// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"fmt"
	"strconv"

	"github.com/togglbot/togglbot/models"
)

const (
	FieldLineUserID  = "line_user_id"
	FieldAPIToken    = "api_token"
	FieldWorkspaceID = "workspace_id"
)

type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLineUserID, FieldAPIToken, FieldWorkspaceID}
	}

	for _, field := range fields {
		switch field {
		case FieldLineUserID:
			if creds.LineUserID == "" {
				return ErrEmptyLineUserID
			}
		case FieldAPIToken:
			if creds.APIToken == "" {
				return ErrEmptyAPIToken
			}
		case FieldWorkspaceID:
			if creds.WorkspaceID == "" {
				return ErrEmptyWorkspaceID
			}
			if _, err := strconv.ParseInt(creds.WorkspaceID, 10, 64); err != nil {
				return fmt.Errorf("%w: %q", ErrWorkspaceIDNotNumeric, creds.WorkspaceID)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}
