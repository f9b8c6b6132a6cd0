package usecase

import (
	"ttiring-notification-srv/internal/alert"
	"ttiring-notification-srv/pkg/discord"
	"ttiring-notification-srv/pkg/log"
)

type implUseCase struct {
	l       log.Logger
	discord discord.IDiscord
}

// New returns an alert UseCase. With a nil d alerts are only logged.
func New(l log.Logger, d discord.IDiscord) alert.UseCase {
	return &implUseCase{
		l:       l,
		discord: d,
	}
}
