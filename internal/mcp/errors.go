package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/resiliency/internal/catalog"
	"github.com/rpggio/resiliency/internal/domain/greenpath"
	"github.com/rpggio/resiliency/internal/domain/notes"
	"github.com/rpggio/resiliency/internal/domain/technology"
)

var errMissingArgument = errors.New("missing argument")

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, technology.ErrRecordNotFound), errors.Is(err, notes.ErrRecordNotFound):
		return &APIError{Code: "RECORD_NOT_FOUND", Message: "record not found", RecoveryHint: "Call filter_technologies or search_technologies to find a valid id"}
	case errors.Is(err, greenpath.ErrInstallationNotFound):
		return &APIError{Code: "INSTALLATION_NOT_FOUND", Message: "installation not found", RecoveryHint: "Call list_installations for valid names"}
	case errors.Is(err, technology.ErrInvalidSortKey), errors.Is(err, greenpath.ErrInvalidSortKey):
		return &APIError{Code: "INVALID_SORT_KEY", Message: err.Error(), RecoveryHint: "Read resiliency://docs/filters for sort columns"}
	case errors.Is(err, catalog.ErrInvalidQuery):
		return &APIError{Code: "INVALID_QUERY", Message: "search query is empty", RecoveryHint: "Pass a non-empty query"}
	case errors.Is(err, notes.ErrInvalidInput), errors.Is(err, errMissingArgument):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return nil
	}
}

// toolError converts a service error into the error a tool handler returns.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
