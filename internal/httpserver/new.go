package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/pkg/discord"
	"ttiring-notification-srv/pkg/fcm"
	"ttiring-notification-srv/pkg/log"
	pkgRedis "ttiring-notification-srv/pkg/redis"
	"ttiring-notification-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer owns the gin engine and the dependencies handed to the domain handlers.
// New only wires and validates; Run maps routes and serves.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	host   string
	port   int
	mode   string

	// Storage
	postgresDB *sql.DB
	redis      pkgRedis.IRedis

	// Push
	sender   fcm.IFCM
	dispatch notification.Config

	// Auth & security
	jwtMgr  scope.Manager
	webhook WebhookConfig

	discord discord.IDiscord
}

// WebhookConfig guards the crawler endpoint.
type WebhookConfig struct {
	APIKey      string
	RatePerHour int
	RateBurst   int
	DedupTTL    time.Duration
}

type Config struct {
	Host string
	Port int
	Mode string

	PostgresDB *sql.DB
	Redis      pkgRedis.IRedis

	Sender   fcm.IFCM
	Dispatch notification.Config

	JWTManager scope.Manager
	Webhook    WebhookConfig

	// Discord is optional.
	Discord discord.IDiscord
}

func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:        gin.New(),
		logger:     logger,
		host:       cfg.Host,
		port:       cfg.Port,
		mode:       cfg.Mode,
		postgresDB: cfg.PostgresDB,
		redis:      cfg.Redis,
		sender:     cfg.Sender,
		dispatch:   cfg.Dispatch,
		jwtMgr:     cfg.JWTManager,
		webhook:    cfg.Webhook,
		discord:    cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("PostgresDB is required")
	}
	if srv.redis == nil {
		return errors.New("Redis client is required")
	}
	if srv.sender == nil {
		return errors.New("push sender is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if srv.webhook.APIKey == "" {
		return errors.New("webhook API key is required")
	}
	return nil
}
