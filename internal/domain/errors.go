package domain

import "errors"

var (
	ErrSectionNotFound          = errors.New("section not found")
	ErrWorkspaceNotFound        = errors.New("workspace not found")
	ErrWorkspaceSectionNotFound = errors.New("workspace section not found")
	ErrDuplicateSectionKey      = errors.New("section key already exists")
	ErrEmptyBulkUpdate          = errors.New("bulk update list is empty")
	ErrDuplicateUpdateID        = errors.New("bulk update list contains duplicate ids")
)
