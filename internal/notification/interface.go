package notification

import (
	"context"

	"ttiring-notification-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessNewNotice fans a notice out to the devices of every user whose keyword matches it.
	// Only index and statistics errors are returned; delivery failures are reported in the result.
	ProcessNewNotice(ctx context.Context, notice model.Notice) (DispatchResult, error)
	// SendImportantBroadcast pushes an important notice to the all-users topic.
	SendImportantBroadcast(ctx context.Context, notice model.Notice) (bool, error)
	// SendCategoryNotification pushes a notice to the topic of its category.
	SendCategoryNotification(ctx context.Context, notice model.Notice) (bool, error)
	// SendTestNotification pushes a diagnostic message to one user. It returns false when the user has no token.
	SendTestNotification(ctx context.Context, userID int64) (bool, error)
	ListHistory(ctx context.Context, sc model.Scope, ip ListHistoryInput) (ListHistoryOutput, error)
}
