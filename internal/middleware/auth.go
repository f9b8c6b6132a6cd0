package middleware

import (
	"strings"

	"ttiring-notification-srv/pkg/response"
	"ttiring-notification-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and stores both the claims and the caller scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			m.l.Warnf(ctx, "internal.middleware.Auth: missing bearer token | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.Auth.Verify: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := scope.NewScope(payload)
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.Auth.NewScope: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, sc)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
