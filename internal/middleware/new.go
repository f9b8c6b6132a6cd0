package middleware

import (
	"ttiring-notification-srv/pkg/discord"
	"ttiring-notification-srv/pkg/log"
	"ttiring-notification-srv/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	discord    discord.IDiscord
}

// New returns the shared middleware set. d may be nil when Discord reporting is disabled.
func New(l log.Logger, jwtManager scope.Manager, d discord.IDiscord) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		discord:    d,
	}
}
