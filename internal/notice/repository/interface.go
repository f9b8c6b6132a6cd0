package repository

import (
	"context"

	"ttiring-notification-srv/internal/model"
)

// Repository reads notices written by the crawler.
//
//go:generate mockery --name Repository
type Repository interface {
	Detail(ctx context.Context, id int64) (model.Notice, error)
}
