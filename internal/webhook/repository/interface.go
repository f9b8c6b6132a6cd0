package repository

import "context"

// DedupRepository remembers which notices were already dispatched.
//
//go:generate mockery --name DedupRepository
type DedupRepository interface {
	// MarkReceived records noticeID and reports whether it was seen for the first time.
	MarkReceived(ctx context.Context, noticeID int64) (bool, error)
	// Release forgets noticeID so a later delivery of the same notice is dispatched again.
	Release(ctx context.Context, noticeID int64) error
}
