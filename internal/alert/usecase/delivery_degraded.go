package usecase

import (
	"context"
	"fmt"
	"time"

	"ttiring-notification-srv/internal/alert"
	"ttiring-notification-srv/pkg/discord"
)

func (uc *implUseCase) ReportDeliveryDegraded(ctx context.Context, input alert.DeliveryDegradedInput) error {
	if input.FailureCount <= 0 {
		return alert.ErrInvalidInput
	}
	if input.OccurredAt.IsZero() {
		input.OccurredAt = time.Now()
	}

	uc.l.Warnf(ctx, "internal.alert.usecase.ReportDeliveryDegraded: notice=%d targets=%d success=%d failure=%d kinds=[%s]",
		input.NoticeID, input.TargetCount, input.SuccessCount, input.FailureCount, formatKinds(input.FailuresByKind))
	if uc.discord == nil {
		return nil
	}

	msgType := discord.MessageTypeWarning
	title := fmt.Sprintf("Partial delivery: notice #%d", input.NoticeID)
	if input.Outage() {
		msgType = discord.MessageTypeError
		title = fmt.Sprintf("Delivery outage: notice #%d", input.NoticeID)
	}

	opts := discord.MessageOptions{
		Type:        msgType,
		Title:       title,
		Description: truncateText(input.NoticeTitle, 200),
		Fields: []discord.EmbedField{
			buildField("Targets", fmt.Sprintf("%d", input.TargetCount), true),
			buildField("Delivered", fmt.Sprintf("%d", input.SuccessCount), true),
			buildField("Failed", fmt.Sprintf("%d", input.FailureCount), true),
			buildField("Failure kinds", formatKinds(input.FailuresByKind), false),
			buildField("Dispatch ID", input.DispatchID, false),
		},
		Timestamp: input.OccurredAt,
		Footer:    &discord.EmbedFooter{Text: footerText},
	}
	if err := uc.discord.SendEmbed(ctx, opts); err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.ReportDeliveryDegraded.SendEmbed: %v", err)
		return err
	}
	return nil
}
