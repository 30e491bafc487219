package transport

import (
	"errors"
	"net/http"

	"github.com/rpggio/resiliency/internal/catalog"
	"github.com/rpggio/resiliency/internal/domain/activity"
	"github.com/rpggio/resiliency/internal/domain/greenpath"
	"github.com/rpggio/resiliency/internal/domain/notes"
	"github.com/rpggio/resiliency/internal/domain/session"
	"github.com/rpggio/resiliency/internal/domain/technology"
)

var (
	errInvalidBody     = errors.New("invalid request body")
	errClientIDTooLong = errors.New("client id too long")
)

// MapError maps domain errors to an HTTP status and error body.
func MapError(err error) (int, ErrorBody) {
	switch {
	case errors.Is(err, technology.ErrRecordNotFound),
		errors.Is(err, session.ErrRecordNotFound),
		errors.Is(err, notes.ErrRecordNotFound):
		return http.StatusNotFound, ErrorBody{Code: "RECORD_NOT_FOUND", Message: "record not found", RecoveryHint: "List technologies to find a valid id"}
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound, ErrorBody{Code: "SESSION_NOT_FOUND", Message: "session not found", RecoveryHint: "Start a new session"}
	case errors.Is(err, session.ErrInstallationNotFound),
		errors.Is(err, greenpath.ErrInstallationNotFound):
		return http.StatusNotFound, ErrorBody{Code: "INSTALLATION_NOT_FOUND", Message: "installation not found", RecoveryHint: "List installations for valid names"}
	case errors.Is(err, technology.ErrInvalidSortKey),
		errors.Is(err, greenpath.ErrInvalidSortKey):
		return http.StatusBadRequest, ErrorBody{Code: "INVALID_SORT_KEY", Message: err.Error(), RecoveryHint: "Use one of the documented sort columns"}
	case errors.Is(err, catalog.ErrInvalidQuery):
		return http.StatusBadRequest, ErrorBody{Code: "INVALID_QUERY", Message: "search query is empty", RecoveryHint: "Pass a non-empty q parameter"}
	case errors.Is(err, session.ErrInvalidInput),
		errors.Is(err, notes.ErrInvalidInput),
		errors.Is(err, activity.ErrInvalidInput),
		errors.Is(err, errInvalidBody),
		errors.Is(err, errClientIDTooLong):
		return http.StatusBadRequest, ErrorBody{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorBody{Code: "INTERNAL", Message: "internal error"}
	}
}
