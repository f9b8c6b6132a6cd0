package usecase

import (
	"context"
	"fmt"
	"time"

	"ttiring-notification-srv/internal/alert"
	"ttiring-notification-srv/pkg/discord"
)

func (uc *implUseCase) ReportDispatchFailure(ctx context.Context, input alert.DispatchFailureInput) error {
	if input.Err == nil {
		return alert.ErrInvalidInput
	}
	if input.OccurredAt.IsZero() {
		input.OccurredAt = time.Now()
	}

	uc.l.Errorf(ctx, "internal.alert.usecase.ReportDispatchFailure: notice=%d stage=%s dispatch=%s: %v",
		input.NoticeID, input.Stage, input.DispatchID, input.Err)
	if uc.discord == nil {
		return nil
	}

	opts := discord.MessageOptions{
		Type:        discord.MessageTypeError,
		Title:       fmt.Sprintf("Dispatch failed: notice #%d", input.NoticeID),
		Description: truncateText(input.NoticeTitle, 200),
		Fields: []discord.EmbedField{
			buildField("Stage", input.Stage, true),
			buildField("Dispatch ID", input.DispatchID, true),
			buildField("Error", fmt.Sprintf("```%s```", input.Err.Error()), false),
		},
		Timestamp: input.OccurredAt,
		Footer:    &discord.EmbedFooter{Text: footerText},
	}
	if err := uc.discord.SendEmbed(ctx, opts); err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.ReportDispatchFailure.SendEmbed: %v", err)
		return err
	}
	return nil
}
