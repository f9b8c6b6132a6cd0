package http

import (
	"ttiring-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Current user
// @Tags User
// @Security Bearer
// @Success 200 {object} response.Resp{data=userResp}
// @Failure 404 {object} response.Resp
// @Router /api/v1/users/me [GET]
func (h *Handler) DetailMe(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	u, err := h.uc.DetailMe(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newUserResp(u))
}

// @Summary Register push token
// @Description Register or replace the caller's device token.
// @Tags User
// @Security Bearer
// @Param body body updatePushTokenReq true "Device token"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/users/me/push-token [PUT]
func (h *Handler) UpdatePushToken(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdatePushTokenRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.UpdatePushToken(ctx, sc, req.toInput()); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.UpdatePushToken: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Remove push token
// @Tags User
// @Security Bearer
// @Success 200 {object} response.Resp
// @Router /api/v1/users/me/push-token [DELETE]
func (h *Handler) ClearPushToken(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.ClearPushToken(ctx, sc); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.ClearPushToken: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
