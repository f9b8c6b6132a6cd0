package usecase

import (
	"context"

	"ttiring-notification-srv/internal/alert"
	"ttiring-notification-srv/internal/model"
	noticeRepository "ttiring-notification-srv/internal/notice/repository"
	"ttiring-notification-srv/internal/webhook"
)

func (uc *implUseCase) HandleNewNotice(ctx context.Context, ip webhook.NewNoticeInput) (webhook.NewNoticeOutput, error) {
	if ip.NoticeID <= 0 {
		return webhook.NewNoticeOutput{}, webhook.ErrInvalidNotice
	}

	notice, err := uc.noticeRepo.Detail(ctx, ip.NoticeID)
	if err != nil {
		if err == noticeRepository.ErrNotFound {
			uc.l.Warnf(ctx, "internal.webhook.usecase.HandleNewNotice: notice=%d not found", ip.NoticeID)
			return webhook.NewNoticeOutput{}, webhook.ErrNoticeNotFound
		}
		uc.l.Errorf(ctx, "internal.webhook.usecase.HandleNewNotice.Detail: %v", err)
		return webhook.NewNoticeOutput{}, err
	}
	if notice.Title == "" {
		notice.Title = ip.Title
	}

	out := webhook.NewNoticeOutput{NoticeID: notice.ID, Title: notice.Title}
	if !uc.markReceived(ctx, notice.ID) {
		uc.l.Infof(ctx, "internal.webhook.usecase.HandleNewNotice: notice=%d already dispatched", notice.ID)
		out.Duplicate = true
		return out, nil
	}

	res, err := uc.notiUC.ProcessNewNotice(ctx, notice)
	if err != nil {
		uc.l.Errorf(ctx, "internal.webhook.usecase.HandleNewNotice.ProcessNewNotice: notice=%d: %v", notice.ID, err)
		uc.reportFailure(ctx, notice, res.DispatchID, err)
		uc.release(ctx, notice.ID)
	} else {
		out.NotificationsSent = res.DeliveredCount()
	}

	if ip.Broadcast && notice.IsImportant {
		out.BroadcastSent = uc.sendBroadcast(ctx, notice)
	}
	if ip.CategoryBroadcast && notice.CategoryID != nil {
		out.CategorySent = uc.sendCategory(ctx, notice)
	}

	uc.l.Infof(ctx, "internal.webhook.usecase.HandleNewNotice: notice=%d sent=%d broadcast=%t category=%t",
		notice.ID, out.NotificationsSent, out.BroadcastSent, out.CategorySent)
	return out, nil
}

// markReceived reports whether the notice should be dispatched. A dedup store failure lets it through.
func (uc *implUseCase) markReceived(ctx context.Context, noticeID int64) bool {
	if uc.dedupRepo == nil {
		return true
	}
	first, err := uc.dedupRepo.MarkReceived(ctx, noticeID)
	if err != nil {
		uc.l.Warnf(ctx, "internal.webhook.usecase.markReceived: notice=%d: %v", noticeID, err)
		return true
	}
	return first
}

// release lets a retry of a notice whose dispatch failed through the dedup check.
func (uc *implUseCase) release(ctx context.Context, noticeID int64) {
	if uc.dedupRepo == nil {
		return
	}
	if err := uc.dedupRepo.Release(ctx, noticeID); err != nil {
		uc.l.Warnf(ctx, "internal.webhook.usecase.release: notice=%d: %v", noticeID, err)
	}
}

func (uc *implUseCase) sendBroadcast(ctx context.Context, notice model.Notice) bool {
	sent, err := uc.notiUC.SendImportantBroadcast(ctx, notice)
	if err != nil {
		uc.l.Warnf(ctx, "internal.webhook.usecase.sendBroadcast: notice=%d: %v", notice.ID, err)
		return false
	}
	return sent
}

func (uc *implUseCase) sendCategory(ctx context.Context, notice model.Notice) bool {
	sent, err := uc.notiUC.SendCategoryNotification(ctx, notice)
	if err != nil {
		uc.l.Warnf(ctx, "internal.webhook.usecase.sendCategory: notice=%d: %v", notice.ID, err)
		return false
	}
	return sent
}

func (uc *implUseCase) reportFailure(ctx context.Context, notice model.Notice, dispatchID string, err error) {
	if uc.alertUC == nil {
		return
	}
	aerr := uc.alertUC.ReportDispatchFailure(ctx, alert.DispatchFailureInput{
		DispatchID:  dispatchID,
		NoticeID:    notice.ID,
		NoticeTitle: notice.Title,
		Stage:       webhook.StageDispatch,
		Err:         err,
		OccurredAt:  uc.clock(),
	})
	if aerr != nil {
		uc.l.Warnf(ctx, "internal.webhook.usecase.reportFailure: %v", aerr)
	}
}
