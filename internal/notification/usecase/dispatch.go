package usecase

import (
	"context"
	"time"

	"ttiring-notification-srv/internal/alert"
	keywordRepository "ttiring-notification-srv/internal/keyword/repository"
	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/internal/notification/repository"
	"ttiring-notification-srv/pkg/fcm"

	"github.com/google/uuid"
)

func (uc *usecase) ProcessNewNotice(ctx context.Context, notice model.Notice) (notification.DispatchResult, error) {
	res := notification.DispatchResult{DispatchID: uuid.NewString()}
	ctx = uc.l.With(ctx, "dispatch_id", res.DispatchID, "notice_id", notice.ID)

	matches, err := uc.keywordRepo.FindMatching(ctx, keywordRepository.FindMatchingOptions{
		Title:      notice.Title,
		Content:    notice.ContentOrEmpty(),
		CategoryID: notice.CategoryID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.ProcessNewNotice.FindMatching: %v", err)
		return res, err
	}
	if len(matches) == 0 {
		uc.l.Infof(ctx, "internal.notification.usecase.ProcessNewNotice: no keyword matched")
		return res, nil
	}
	res.MatchedSubscriptionCount = len(matches)

	tg := resolveTargets(matches)
	res.TargetDeviceCount = len(tg.tokens)

	if len(tg.tokens) == 0 {
		uc.l.Warnf(ctx, "internal.notification.usecase.ProcessNewNotice: %d matches but no deliverable token", len(matches))
		return res, nil
	}

	msg := newNoticeMessage(notice)
	uc.dispatch(ctx, tg.tokens, msg, &res)

	now := uc.clock()
	statsErr := uc.keywordRepo.IncrementMatched(ctx, keywordRepository.IncrementMatchedOptions{
		IDs:        matchedIDs(matches),
		NotifiedAt: now,
	})
	if statsErr != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.ProcessNewNotice.IncrementMatched: %v", statsErr)
	}

	uc.recordInvalidTokens(ctx, res.Failures)
	uc.recordHistory(ctx, notice, msg, tg.owners, res.Failures, now)
	uc.reportDegraded(ctx, notice, res)

	uc.l.Infof(ctx, "internal.notification.usecase.ProcessNewNotice: matched=%d targets=%d success=%d failure=%d",
		res.MatchedSubscriptionCount, res.TargetDeviceCount, res.SuccessCount, res.FailureCount)
	return res, statsErr
}

// dispatch sends msg to tokens chunk by chunk. A failed chunk never stops the ones after it.
func (uc *usecase) dispatch(ctx context.Context, tokens []string, msg fcm.Message, res *notification.DispatchResult) {
	chunks := chunk(tokens, uc.cfg.BatchSize)
	for i, batch := range chunks {
		if i > 0 {
			uc.sleep(ctx, uc.cfg.ChunkDelay)
		}

		br, kind, err := uc.sendChunk(ctx, batch, msg)
		if err != nil {
			uc.l.Errorf(ctx, "internal.notification.usecase.dispatch: chunk %d/%d (%d tokens) kind=%s: %v",
				i+1, len(chunks), len(batch), kind, err)
			for _, t := range batch {
				res.Failures = append(res.Failures, notification.DeliveryFailure{Token: t, Kind: kind})
			}
			res.FailureCount += len(batch)
			continue
		}

		res.SuccessCount += br.SuccessCount
		res.FailureCount += br.FailureCount
		for _, f := range br.Failures {
			res.Failures = append(res.Failures, notification.DeliveryFailure{Token: f.Token, Kind: f.Kind})
		}
	}
}

// sendChunk bounds one provider call by ChunkTimeout and classifies a whole-chunk failure.
func (uc *usecase) sendChunk(ctx context.Context, batch []string, msg fcm.Message) (fcm.BatchResult, fcm.ErrorKind, error) {
	chunkCtx, cancel := context.WithTimeout(ctx, uc.cfg.ChunkTimeout)
	defer cancel()

	br, err := uc.sender.SendBatch(chunkCtx, batch, msg)
	if err == nil {
		return br, "", nil
	}
	if chunkCtx.Err() != nil {
		return br, fcm.ErrorKindTimeout, err
	}
	// A rejected request says nothing about the tokens in it.
	kind := fcm.Classify(err)
	if kind == "" || kind == fcm.ErrorKindInvalidToken {
		kind = fcm.ErrorKindUnknown
	}
	return br, kind, err
}

func (uc *usecase) recordInvalidTokens(ctx context.Context, failures []notification.DeliveryFailure) {
	if uc.tokenRepo == nil {
		return
	}

	var invalid []string
	for _, f := range failures {
		if f.Kind == fcm.ErrorKindInvalidToken {
			invalid = append(invalid, f.Token)
		}
	}
	if len(invalid) == 0 {
		return
	}

	if err := uc.tokenRepo.MarkInvalid(ctx, invalid); err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.recordInvalidTokens: %v", err)
		return
	}
	uc.l.Infof(ctx, "internal.notification.usecase.recordInvalidTokens: %d tokens queued for cleanup", len(invalid))
}

func (uc *usecase) recordHistory(ctx context.Context, notice model.Notice, msg fcm.Message, owners []ownerTarget,
	failures []notification.DeliveryFailure, sentAt time.Time) {
	if uc.historyRepo == nil || len(owners) == 0 {
		return
	}

	failed := make(map[string]fcm.ErrorKind, len(failures))
	for _, f := range failures {
		failed[f.Token] = f.Kind
	}

	rows := make([]model.NotificationHistory, 0, len(owners))
	for _, o := range owners {
		h := model.NotificationHistory{
			UserID:   o.UserID,
			NoticeID: notice.ID,
			Title:    msg.Title,
			Body:     msg.Body,
			Status:   model.NotificationStatusSuccess,
			SentAt:   sentAt,
		}
		if kind, ok := failed[o.Token]; ok {
			h.Status = model.NotificationStatusFailed
			h.ErrorMessage = string(kind)
		}
		rows = append(rows, h)
	}

	if err := uc.historyRepo.CreateMany(ctx, repository.CreateHistoriesOptions{Histories: rows}); err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.recordHistory: %v", err)
	}
}

// reportDegraded alerts when a delivery failed for a reason other than a stale token.
func (uc *usecase) reportDegraded(ctx context.Context, notice model.Notice, res notification.DispatchResult) {
	if uc.alertUC == nil || res.FailureCount == 0 {
		return
	}

	byKind := make(map[string]int)
	actionable := false
	for _, f := range res.Failures {
		byKind[string(f.Kind)]++
		if f.Kind != fcm.ErrorKindInvalidToken {
			actionable = true
		}
	}
	if !actionable {
		return
	}

	err := uc.alertUC.ReportDeliveryDegraded(ctx, alert.DeliveryDegradedInput{
		DispatchID:     res.DispatchID,
		NoticeID:       notice.ID,
		NoticeTitle:    notice.Title,
		TargetCount:    res.TargetDeviceCount,
		SuccessCount:   res.SuccessCount,
		FailureCount:   res.FailureCount,
		FailuresByKind: byKind,
		OccurredAt:     uc.clock(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.notification.usecase.reportDegraded: %v", err)
	}
}
