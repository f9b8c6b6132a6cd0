package http

import (
	"ttiring-notification-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	me := r.Group("/users/me", mw.Auth())
	{
		me.GET("", h.DetailMe)
		me.PUT("/push-token", h.UpdatePushToken)
		me.DELETE("/push-token", h.ClearPushToken)
	}
}
