package repository

import (
	"context"

	"ttiring-notification-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// FindMatching returns every active keyword of an active owner with a device token whose
	// keyword occurs in the title or content and whose category filter admits the notice.
	FindMatching(ctx context.Context, opts FindMatchingOptions) ([]model.KeywordMatch, error)
	// IncrementMatched bumps matched_count by one and sets last_notified_at for all IDs in one write.
	IncrementMatched(ctx context.Context, opts IncrementMatchedOptions) error

	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Keyword, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (model.Keyword, error)
	Count(ctx context.Context, sc model.Scope) (int64, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Keyword, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Keyword, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
