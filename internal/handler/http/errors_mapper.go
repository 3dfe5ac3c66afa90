package http

import (
	"errors"
	"net/http"

	"github.com/ddenisov/go-contact-keeper/internal/service"
	"github.com/ddenisov/go-contact-keeper/internal/store"
	"github.com/ddenisov/go-contact-keeper/internal/validators"
)

// errorStatusMap is the single place where the error taxonomy is translated
// into HTTP status codes. Every error that escapes a handler is matched here
// with errors.Is; anything unmatched is an internal error.
var errorStatusMap = map[error]int{
	validators.ErrInvalidRequest: http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrContactNotFound:       http.StatusNotFound,
	store.ErrAddressNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
