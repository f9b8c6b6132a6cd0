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

func (h *Handler) processUpdatePushTokenRequest(c *gin.Context) (updatePushTokenReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return updatePushTokenReq{}, model.Scope{}, err
	}

	var req updatePushTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.user.delivery.http.processUpdatePushTokenRequest: %v", err)
		return updatePushTokenReq{}, model.Scope{}, errWrongBody
	}
	return req, sc, nil
}
