package http

import (
	"ttiring-notification-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("/health", h.Health)
	r.POST("/new-notice", mw.APIKey(h.apiKey), mw.RateLimit(h.limiter), h.NewNotice)
}
