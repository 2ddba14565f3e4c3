package adapter

import "errors"

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrBadRequest       = errors.New("toggl rejected the request")
	ErrUnauthorized     = errors.New("toggl token unauthorized")
	ErrForbidden        = errors.New("toggl access forbidden")
	ErrNotFound         = errors.New("toggl resource not found")
	ErrTooManyRequests  = errors.New("toggl rate limit exceeded")
	ErrTogglUnavailable = errors.New("toggl unavailable")
)
