package http

import (
	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errUnauth
	}
	return sc, nil
}

func (h *Handler) processListHistoryRequest(c *gin.Context) (listHistoryReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return listHistoryReq{}, model.Scope{}, err
	}

	var req listHistoryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.notification.delivery.http.processListHistoryRequest: %v", err)
		return listHistoryReq{}, model.Scope{}, errWrongQuery
	}
	return req, sc, nil
}
