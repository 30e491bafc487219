package greenpath

import "errors"

var (
	// ErrInstallationNotFound indicates no record belongs to the installation.
	ErrInstallationNotFound = errors.New("installation not found")
	// ErrInvalidSortKey indicates an unknown sort column.
	ErrInvalidSortKey = errors.New("invalid sort key")
)
