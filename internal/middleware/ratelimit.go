package middleware

import (
	"time"

	"ttiring-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// NewHourlyLimiter allows perHour requests per hour with the given burst.
func NewHourlyLimiter(perHour, burst int) *rate.Limiter {
	if perHour <= 0 {
		return rate.NewLimiter(rate.Inf, burst)
	}
	return rate.NewLimiter(rate.Every(time.Hour/time.Duration(perHour)), burst)
}

// RateLimit answers 429 once limiter has no token left. The limiter is shared by all callers of the route.
func (m Middleware) RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: limit reached | Path: %s", c.Request.URL.Path)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
