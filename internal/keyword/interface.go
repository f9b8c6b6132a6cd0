package keyword

import (
	"context"

	"ttiring-notification-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.Keyword, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Keyword, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Keyword, error)
	Toggle(ctx context.Context, sc model.Scope, id int64) (model.Keyword, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
