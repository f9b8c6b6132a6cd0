package redis

import (
	"time"

	"ttiring-notification-srv/internal/webhook"
	"ttiring-notification-srv/internal/webhook/repository"
	pkgLog "ttiring-notification-srv/pkg/log"
	pkgRedis "ttiring-notification-srv/pkg/redis"
)

const receivedKeyPrefix = "webhook:notice:"

type implRepository struct {
	l     pkgLog.Logger
	redis pkgRedis.IRedis
	ttl   time.Duration
}

var _ repository.DedupRepository = &implRepository{}

// New remembers notices for ttl, or webhook.DefaultDedupTTL when ttl is not positive.
func New(l pkgLog.Logger, redis pkgRedis.IRedis, ttl time.Duration) repository.DedupRepository {
	if ttl <= 0 {
		ttl = webhook.DefaultDedupTTL
	}
	return &implRepository{
		l:     l,
		redis: redis,
		ttl:   ttl,
	}
}
