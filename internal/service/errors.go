package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidWorkspaceID = errors.New("workspace ID is not numeric")
)
