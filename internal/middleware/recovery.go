package middleware

import (
	"ttiring-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				m.l.Errorf(c.Request.Context(), "Panic recovered: %v | Method: %s | Path: %s",
					rec, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, rec, m.discord)
				c.Abort()
			}
		}()
		c.Next()
	}
}
