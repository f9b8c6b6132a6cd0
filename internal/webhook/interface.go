package webhook

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// HandleNewNotice runs the keyword fan-out for a notice the crawler has just stored,
	// then the optional important broadcast and category topic push.
	HandleNewNotice(ctx context.Context, ip NewNoticeInput) (NewNoticeOutput, error)
}
