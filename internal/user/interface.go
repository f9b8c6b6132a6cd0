package user

import (
	"context"

	"ttiring-notification-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	DetailMe(ctx context.Context, sc model.Scope) (model.User, error)
	UpdatePushToken(ctx context.Context, sc model.Scope, ip UpdatePushTokenInput) error
	ClearPushToken(ctx context.Context, sc model.Scope) error
}
