package http

import (
	"net/http"

	"ttiring-notification-srv/internal/keyword"
	pkgErrors "ttiring-notification-srv/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(110001, "Wrong body", http.StatusBadRequest)
	errWrongQuery = pkgErrors.NewHTTPError(110002, "Wrong query", http.StatusBadRequest)
	errWrongID    = pkgErrors.NewHTTPError(110003, "Wrong keyword id", http.StatusBadRequest)
	errUnauth     = pkgErrors.NewUnauthorizedHTTPError()
)

var errorMapping = map[error]*pkgErrors.HTTPError{
	keyword.ErrKeywordNotFound:      pkgErrors.NewHTTPError(110004, "Keyword not found", http.StatusNotFound),
	keyword.ErrKeywordExists:        pkgErrors.NewHTTPError(110005, "Keyword already registered", http.StatusConflict),
	keyword.ErrKeywordEmpty:         pkgErrors.NewHTTPError(110006, "Keyword is required", http.StatusBadRequest),
	keyword.ErrKeywordTooLong:       pkgErrors.NewHTTPError(110007, "Keyword must be at most 50 characters", http.StatusBadRequest),
	keyword.ErrKeywordLimitExceeded: pkgErrors.NewHTTPError(110008, "Keyword limit exceeded", http.StatusBadRequest),
	keyword.ErrInvalidCategory:      pkgErrors.NewHTTPError(110009, "Invalid category", http.StatusBadRequest),
}

// mapError returns the HTTP error for a known domain error and err itself otherwise.
func (h *Handler) mapError(err error) error {
	if httpErr, ok := errorMapping[err]; ok {
		return httpErr
	}
	return err
}
