package webhook

import "time"

const (
	// DefaultDedupTTL is how long a delivered noticeId is remembered.
	DefaultDedupTTL = 10 * time.Minute

	StageDispatch = "dispatch"
)

type NewNoticeInput struct {
	NoticeID int64
	// Title is the crawler's copy, used only when the stored notice has none.
	Title     string
	Broadcast bool

	// CategoryBroadcast also pushes the notice to its category topic.
	CategoryBroadcast bool
}

type NewNoticeOutput struct {
	NoticeID          int64
	Title             string
	NotificationsSent int
	Duplicate         bool
	BroadcastSent     bool
	CategorySent      bool
}
