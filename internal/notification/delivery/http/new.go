package http

import (
	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/pkg/discord"
	"ttiring-notification-srv/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      notification.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc notification.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
