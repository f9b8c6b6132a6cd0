package http

import (
	"ttiring-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Send test notification
// @Description Push a test message to the caller's registered device.
// @Tags Notification
// @Security Bearer
// @Success 200 {object} response.Resp{data=sendTestResp}
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/notifications/test [POST]
func (h *Handler) SendTest(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	sent, err := h.uc.SendTestNotification(ctx, sc.UserID)
	if err != nil {
		h.l.Warnf(ctx, "internal.notification.delivery.http.SendTest: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSendTestResp(sent))
}

// @Summary List notification history
// @Tags Notification
// @Security Bearer
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {object} response.Resp{data=listHistoryResp}
// @Failure 401 {object} response.Resp
// @Router /api/v1/notifications/history [GET]
func (h *Handler) ListHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListHistoryRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.ListHistory(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.ListHistory: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListHistoryResp(out))
}
