package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type CORSConfig struct {
	// AllowedOrigins entries are exact origins, "*" or a "*.domain" suffix.
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAgeSeconds    int
}

// DefaultCORSConfig opens the API to the app, the admin console and the crawler.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodOptions, http.MethodHead,
		},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Accept-Encoding", "Authorization", APIKeyHeader},
		ExposedHeaders:   []string{"Content-Length", "Content-Encoding"},
		AllowCredentials: false,
		MaxAgeSeconds:    int((24 * time.Hour).Seconds()),
	}
}

// corsHeaders holds the response headers derived once from a CORSConfig.
type corsHeaders struct {
	origins     []string
	methods     string
	headers     string
	exposed     string
	credentials bool
	maxAge      string
}

func newCORSHeaders(cfg CORSConfig) corsHeaders {
	h := corsHeaders{
		origins:     cfg.AllowedOrigins,
		methods:     strings.Join(cfg.AllowedMethods, ", "),
		headers:     strings.Join(cfg.AllowedHeaders, ", "),
		exposed:     strings.Join(cfg.ExposedHeaders, ", "),
		credentials: cfg.AllowCredentials,
	}
	if cfg.MaxAgeSeconds > 0 {
		h.maxAge = strconv.Itoa(cfg.MaxAgeSeconds)
	}
	return h
}

// allowOrigin returns the value for Access-Control-Allow-Origin, or "" to omit it.
func (h corsHeaders) allowOrigin(origin string) string {
	for _, o := range h.origins {
		switch {
		case o == "*" && origin == "":
			return "*"
		case o == "*", o == origin:
			return origin
		case strings.HasPrefix(o, "*.") && strings.HasSuffix(origin, o[1:]):
			return origin
		}
	}
	return ""
}

func setIf(c *gin.Context, key, value string) {
	if value != "" {
		c.Header(key, value)
	}
}

// CORS answers preflight requests with 204 and decorates every other response.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	h := newCORSHeaders(cfg)
	return func(c *gin.Context) {
		setIf(c, "Access-Control-Allow-Origin", h.allowOrigin(c.GetHeader("Origin")))
		setIf(c, "Access-Control-Expose-Headers", h.exposed)
		if h.credentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}
		setIf(c, "Access-Control-Allow-Methods", h.methods)
		setIf(c, "Access-Control-Allow-Headers", h.headers)
		setIf(c, "Access-Control-Max-Age", h.maxAge)
		c.AbortWithStatus(http.StatusNoContent)
	}
}
