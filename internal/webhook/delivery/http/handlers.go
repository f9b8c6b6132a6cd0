package http

import (
	"ttiring-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary New notice webhook
// @Description Called by the crawler after it stores a notice. Matches keywords and sends pushes.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param X-API-Key header string true "Webhook API key"
// @Param body body newNoticeReq true "Notice"
// @Success 200 {object} response.Resp{data=newNoticeResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Router /api/webhook/new-notice [POST]
func (h *Handler) NewNotice(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNewNoticeRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.HandleNewNotice(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.webhook.delivery.http.NewNotice: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newNewNoticeResp(out))
}

// @Summary Webhook health
// @Tags Webhook
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp}
// @Router /api/webhook/health [GET]
func (h *Handler) Health(c *gin.Context) {
	response.OK(c, healthResp{Status: "UP", Service: "webhook"})
}
