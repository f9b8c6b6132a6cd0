package httpserver

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/pkg/fcm"
	"ttiring-notification-srv/pkg/log"
	pkgRedis "ttiring-notification-srv/pkg/redis"
	"ttiring-notification-srv/pkg/scope"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopSender struct{}

func (nopSender) SendSingle(ctx context.Context, token string, msg fcm.Message) error { return nil }

func (nopSender) SendBatch(ctx context.Context, tokens []string, msg fcm.Message) (fcm.BatchResult, error) {
	return fcm.BatchResult{SuccessCount: len(tokens)}, nil
}

func (nopSender) SendTopic(ctx context.Context, topic string, msg fcm.Message) error { return nil }

// unreachableDB is a pool whose every connection attempt is refused.
func unreachableDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=x dbname=x sslmode=disable connect_timeout=1")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func validConfig(t *testing.T) Config {
	mr := miniredis.RunT(t)
	return Config{
		Port:       8080,
		Mode:       "test",
		PostgresDB: unreachableDB(t),
		Redis:      pkgRedis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()})),
		Sender:     nopSender{},
		Dispatch:   notification.DefaultConfig(),
		JWTManager: scope.New("0123456789abcdef0123456789abcdef"),
		Webhook:    WebhookConfig{APIKey: "crawler-key", RatePerHour: 1000, RateBurst: 50},
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing port", func(c *Config) { c.Port = 0 }},
		{"missing postgres", func(c *Config) { c.PostgresDB = nil }},
		{"missing redis", func(c *Config) { c.Redis = nil }},
		{"missing sender", func(c *Config) { c.Sender = nil }},
		{"missing jwt", func(c *Config) { c.JWTManager = nil }},
		{"missing webhook key", func(c *Config) { c.Webhook.APIKey = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)
			_, err := New(log.NewNop(), cfg)
			assert.Error(t, err)
		})
	}
}

func TestRoutes(t *testing.T) {
	srv, err := New(log.NewNop(), validConfig(t))
	require.NoError(t, err)
	srv.mapHandlers()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/webhook/health", http.StatusOK},
		{http.MethodPost, "/api/webhook/new-notice", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/keywords", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/users/me", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/notifications/test", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
