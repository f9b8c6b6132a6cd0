package httpserver

import (
	"net/http"

	pkgErrors "ttiring-notification-srv/pkg/errors"
	"ttiring-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "ttiring-notification-srv"
	serviceVersion = "1.0.0"
)

var (
	errPostgresDown = pkgErrors.NewHTTPError(503, "PostgreSQL connection not available", http.StatusServiceUnavailable)
	errRedisDown    = pkgErrors.NewHTTPError(503, "Redis connection not available", http.StatusServiceUnavailable)
)

// healthCheck handles health check requests
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": serviceVersion,
		"service": serviceName,
	})
}

// readyCheck pings the stores the dispatcher cannot work without.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.logger.Warnf(ctx, "internal.httpserver.readyCheck.Postgres: %v", err)
		response.HttpError(c, errPostgresDown)
		return
	}
	if err := srv.redis.Ping(ctx); err != nil {
		srv.logger.Warnf(ctx, "internal.httpserver.readyCheck.Redis: %v", err)
		response.HttpError(c, errRedisDown)
		return
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"version":  serviceVersion,
		"service":  serviceName,
		"postgres": "connected",
		"redis":    "connected",
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": serviceVersion,
		"service": serviceName,
	})
}
