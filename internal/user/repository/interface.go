package repository

import (
	"context"

	"ttiring-notification-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Detail(ctx context.Context, id int64) (model.User, error)
	// UpdatePushToken stores opts.Token, or clears the column when it is nil.
	UpdatePushToken(ctx context.Context, opts UpdatePushTokenOptions) error
}
