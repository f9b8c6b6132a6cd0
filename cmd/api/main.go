package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ttiring-notification-srv/config"
	"ttiring-notification-srv/config/firebase"
	"ttiring-notification-srv/config/postgre"
	configRedis "ttiring-notification-srv/config/redis"
	"ttiring-notification-srv/internal/httpserver"
	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/pkg/discord"
	"ttiring-notification-srv/pkg/fcm"
	"ttiring-notification-srv/pkg/log"
	"ttiring-notification-srv/pkg/scope"
)

// @title       Ttiring Notification Service
// @description Keyword matching and push delivery for campus notices.
// @version     1.0
// @host        localhost:8080
// @schemes     http
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
//
// @securityDefinitions.apikey WebhookKey
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Service:      "ttiring-notification-srv",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting notification service...")

	// Discord is optional; alerts fall back to logs.
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		discordClient, err = discord.New(logger, discord.Webhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		}, discord.DefaultConfig())
		if err != nil {
			logger.Warnf(ctx, "Failed to initialize Discord webhook: %v", err)
			discordClient = nil
		} else {
			defer discordClient.Close()
			logger.Info(ctx, "Discord webhook initialized")
		}
	}

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect(postgresDB)
	logger.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	messagingClient, err := firebase.Connect(ctx, cfg.Firebase)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Firebase: %v", err)
		return
	}
	sender := fcm.New(logger, messagingClient, fcm.DefaultConfig())
	logger.Infof(ctx, "Firebase messaging initialized for project %s", cfg.Firebase.ProjectID)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host: cfg.HTTPServer.Host,
		Port: cfg.HTTPServer.Port,
		Mode: cfg.HTTPServer.Mode,

		PostgresDB: postgresDB,
		Redis:      redisClient,

		Sender: sender,
		Dispatch: notification.Config{
			BatchSize:    cfg.Dispatch.BatchSize,
			ChunkDelay:   cfg.Dispatch.ChunkDelay,
			ChunkTimeout: cfg.Dispatch.ChunkTimeout,
		},

		JWTManager: scope.New(cfg.JWT.SecretKey),
		Webhook: httpserver.WebhookConfig{
			APIKey:      cfg.Webhook.APIKey,
			RatePerHour: cfg.Webhook.RatePerHour,
			RateBurst:   cfg.Webhook.RateBurst,
			DedupTTL:    cfg.Webhook.DedupTTL,
		},

		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
	logger.Info(ctx, "Notification service stopped")
}
