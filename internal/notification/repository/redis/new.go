package redis

import (
	"time"

	"ttiring-notification-srv/internal/notification/repository"
	pkgLog "ttiring-notification-srv/pkg/log"
	pkgRedis "ttiring-notification-srv/pkg/redis"
)

const (
	invalidTokensKey = "notification:invalid_tokens"
	invalidTokensTTL = 7 * 24 * time.Hour
)

type implRepository struct {
	l     pkgLog.Logger
	redis pkgRedis.IRedis
}

var _ repository.TokenRepository = &implRepository{}

func New(l pkgLog.Logger, redis pkgRedis.IRedis) repository.TokenRepository {
	return &implRepository{
		l:     l,
		redis: redis,
	}
}
