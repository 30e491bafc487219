package technology

import "errors"

var (
	// ErrRecordNotFound indicates no record has the requested id.
	ErrRecordNotFound = errors.New("technology record not found")
	// ErrDuplicateID indicates two records share an id.
	ErrDuplicateID = errors.New("duplicate technology record id")
	// ErrInvalidSortKey indicates an unknown sort column.
	ErrInvalidSortKey = errors.New("invalid sort key")
)
