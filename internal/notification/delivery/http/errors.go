package http

import (
	"net/http"

	"ttiring-notification-srv/internal/notification"
	pkgErrors "ttiring-notification-srv/pkg/errors"
)

var (
	errWrongQuery = pkgErrors.NewHTTPError(130001, "Wrong query", http.StatusBadRequest)
	errUnauth     = pkgErrors.NewUnauthorizedHTTPError()
)

func (h *Handler) mapError(err error) error {
	switch err {
	case notification.ErrUserNotFound:
		return pkgErrors.NewHTTPError(130002, "User not found", http.StatusNotFound)
	}
	return err
}
