package http

import (
	"net/http"

	"ttiring-notification-srv/internal/webhook"
	pkgErrors "ttiring-notification-srv/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(140001, "Wrong body", http.StatusBadRequest)

func (h *Handler) mapError(err error) error {
	switch err {
	case webhook.ErrNoticeNotFound:
		return pkgErrors.NewHTTPError(140002, "Notice not found", http.StatusNotFound)
	case webhook.ErrInvalidNotice:
		return pkgErrors.NewHTTPError(140003, "noticeId must be positive", http.StatusBadRequest)
	}
	return err
}
