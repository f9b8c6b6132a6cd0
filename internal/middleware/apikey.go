package middleware

import (
	"crypto/subtle"

	"ttiring-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const APIKeyHeader = "X-API-Key"

// APIKey admits requests whose X-API-Key header equals key.
func (m Middleware) APIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(APIKeyHeader)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			m.l.Warnf(c.Request.Context(), "internal.middleware.APIKey: rejected request from %s | Path: %s", c.ClientIP(), c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
