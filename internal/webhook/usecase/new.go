package usecase

import (
	"time"

	"ttiring-notification-srv/internal/alert"
	noticeRepository "ttiring-notification-srv/internal/notice/repository"
	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/internal/webhook"
	"ttiring-notification-srv/internal/webhook/repository"
	pkgLog "ttiring-notification-srv/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	noticeRepo noticeRepository.Repository
	dedupRepo  repository.DedupRepository
	notiUC     notification.UseCase
	alertUC    alert.UseCase
	clock      func() time.Time
}

var _ webhook.UseCase = &implUseCase{}

// New builds the webhook use case. dedupRepo and alertUC may be nil.
func New(
	l pkgLog.Logger,
	noticeRepo noticeRepository.Repository,
	dedupRepo repository.DedupRepository,
	notiUC notification.UseCase,
	alertUC alert.UseCase,
) webhook.UseCase {
	return &implUseCase{
		l:          l,
		noticeRepo: noticeRepo,
		dedupRepo:  dedupRepo,
		notiUC:     notiUC,
		alertUC:    alertUC,
		clock:      time.Now,
	}
}
