package http

import (
	"ttiring-notification-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	kw := r.Group("/keywords", mw.Auth())
	{
		kw.GET("", h.List)
		kw.POST("", h.Create)
		kw.PUT("/:id", h.Update)
		kw.PATCH("/:id/toggle", h.Toggle)
		kw.DELETE("/:id", h.Delete)
	}
}
