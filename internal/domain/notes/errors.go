package notes

import "errors"

var (
	// ErrRecordNotFound indicates the note targets an unknown record.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidInput indicates a missing client or record id.
	ErrInvalidInput = errors.New("invalid note input")
)
