package repository

import (
	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/pkg/paginator"
)

type CreateHistoriesOptions struct {
	Histories []model.NotificationHistory
}

type ListHistoryOptions struct {
	PaginateQuery paginator.PaginateQuery
}
