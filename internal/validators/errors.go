package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLineUserID       = errors.New("LINE user ID is required")
	ErrEmptyAPIToken         = errors.New("API token is required")
	ErrEmptyWorkspaceID      = errors.New("workspace ID is required")
	ErrWorkspaceIDNotNumeric = errors.New("workspace ID must be numeric")
)
