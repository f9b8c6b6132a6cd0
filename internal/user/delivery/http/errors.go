package http

import (
	"net/http"

	"ttiring-notification-srv/internal/user"
	pkgErrors "ttiring-notification-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(120001, "Wrong body", http.StatusBadRequest)
	errUnauth    = pkgErrors.NewUnauthorizedHTTPError()
)

func (h *Handler) mapError(err error) error {
	switch err {
	case user.ErrUserNotFound:
		return pkgErrors.NewHTTPError(120002, "User not found", http.StatusNotFound)
	case user.ErrUserInactive:
		return pkgErrors.NewHTTPError(120003, "User is inactive", http.StatusForbidden)
	case user.ErrPushTokenEmpty:
		return pkgErrors.NewHTTPError(120004, "Push token is required", http.StatusBadRequest)
	case user.ErrPushTokenTooLong:
		return pkgErrors.NewHTTPError(120005, "Push token is too long", http.StatusBadRequest)
	}
	return err
}
