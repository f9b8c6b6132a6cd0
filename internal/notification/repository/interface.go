package repository

import (
	"context"

	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/pkg/paginator"
)

// HistoryRepository stores the per-user outcome of every dispatch.
//
//go:generate mockery --name HistoryRepository
type HistoryRepository interface {
	CreateMany(ctx context.Context, opts CreateHistoriesOptions) error
	List(ctx context.Context, sc model.Scope, opts ListHistoryOptions) ([]model.NotificationHistory, paginator.Paginator, error)
}

// TokenRepository remembers device tokens the provider rejected as invalid, for a later cleanup job.
//
//go:generate mockery --name TokenRepository
type TokenRepository interface {
	MarkInvalid(ctx context.Context, tokens []string) error
}
