package session

import "errors"

var (
	// ErrSessionNotFound indicates the session doesn't exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrRecordNotFound indicates the target record doesn't exist.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInstallationNotFound indicates no record is located at the installation.
	ErrInstallationNotFound = errors.New("installation not found")
	// ErrInvalidInput indicates invalid session input.
	ErrInvalidInput = errors.New("invalid session input")
)
