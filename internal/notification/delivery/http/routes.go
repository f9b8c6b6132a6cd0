package http

import (
	"ttiring-notification-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	n := r.Group("/notifications", mw.Auth())
	{
		n.POST("/test", h.SendTest)
		n.GET("/history", h.ListHistory)
	}
}
