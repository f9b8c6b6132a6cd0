package http

import (
	"ttiring-notification-srv/internal/webhook"
	"ttiring-notification-srv/pkg/discord"
	"ttiring-notification-srv/pkg/log"

	"golang.org/x/time/rate"
)

type Handler struct {
	l       log.Logger
	uc      webhook.UseCase
	discord discord.IDiscord
	apiKey  string
	limiter *rate.Limiter
}

// New builds the crawler-facing handler. All requests share limiter.
func New(l log.Logger, uc webhook.UseCase, d discord.IDiscord, apiKey string, limiter *rate.Limiter) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
		apiKey:  apiKey,
		limiter: limiter,
	}
}
