package usecase

import (
	"context"

	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/internal/notification/repository"
)

func (uc *usecase) ListHistory(ctx context.Context, sc model.Scope, ip notification.ListHistoryInput) (notification.ListHistoryOutput, error) {
	ip.PaginateQuery.Adjust()

	hs, pag, err := uc.historyRepo.List(ctx, sc, repository.ListHistoryOptions{PaginateQuery: ip.PaginateQuery})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.ListHistory: %v", err)
		return notification.ListHistoryOutput{}, err
	}
	return notification.ListHistoryOutput{Histories: hs, Paginator: pag}, nil
}
