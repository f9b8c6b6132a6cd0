package usecase

import (
	"context"
	"time"

	"ttiring-notification-srv/internal/alert"
	keywordRepository "ttiring-notification-srv/internal/keyword/repository"
	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/internal/notification/repository"
	userRepository "ttiring-notification-srv/internal/user/repository"
	"ttiring-notification-srv/pkg/fcm"
	pkgLog "ttiring-notification-srv/pkg/log"
)

type usecase struct {
	l           pkgLog.Logger
	keywordRepo keywordRepository.Repository
	userRepo    userRepository.Repository
	historyRepo repository.HistoryRepository
	tokenRepo   repository.TokenRepository
	sender      fcm.IFCM
	alertUC     alert.UseCase
	cfg         notification.Config

	clock func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

// New wires the dispatcher. Zero cfg fields fall back to notification.DefaultConfig.
func New(
	l pkgLog.Logger,
	keywordRepo keywordRepository.Repository,
	userRepo userRepository.Repository,
	historyRepo repository.HistoryRepository,
	tokenRepo repository.TokenRepository,
	sender fcm.IFCM,
	alertUC alert.UseCase,
	cfg notification.Config,
) notification.UseCase {
	def := notification.DefaultConfig()
	if cfg.BatchSize <= 0 || cfg.BatchSize > fcm.MaxBatchSize {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.ChunkDelay < 0 {
		cfg.ChunkDelay = def.ChunkDelay
	}
	if cfg.ChunkTimeout <= 0 {
		cfg.ChunkTimeout = def.ChunkTimeout
	}

	return &usecase{
		l:           l,
		keywordRepo: keywordRepo,
		userRepo:    userRepo,
		historyRepo: historyRepo,
		tokenRepo:   tokenRepo,
		sender:      sender,
		alertUC:     alertUC,
		cfg:         cfg,
		clock:       time.Now,
		sleep:       sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
