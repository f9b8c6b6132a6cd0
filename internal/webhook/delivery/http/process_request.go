package http

import "github.com/gin-gonic/gin"

func (h *Handler) processNewNoticeRequest(c *gin.Context) (newNoticeReq, error) {
	var req newNoticeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.webhook.delivery.http.processNewNoticeRequest: %v", err)
		return newNoticeReq{}, errWrongBody
	}
	return req, nil
}
