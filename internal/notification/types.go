package notification

import (
	"time"

	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/pkg/fcm"
	"ttiring-notification-srv/pkg/paginator"
)

const (
	TopicAllUsers       = "all_users"
	CategoryTopicPrefix = "category_"

	TypeNewNotice       = "new_notice"
	TypeImportantNotice = "important_notice"
	TypeCategoryNotice  = "category_notice"
	TypeTest            = "test"

	NewNoticeTitle       = "새 공지사항이 등록되었습니다"
	ImportantNoticeTitle = "[중요] 새 공지사항"
	CategoryTitleFormat  = "[%s] 새 공지사항"
	TestTitle            = "띠링인캠퍼스 테스트 알림"
	TestBody             = "알림이 정상적으로 작동하고 있습니다 ✅"

	// BodyMaxRunes is the length at which the notice title is cut for the push body.
	BodyMaxRunes = 100
)

// DeliveryFailure is one token that did not receive the push.
type DeliveryFailure struct {
	Token string
	Kind  fcm.ErrorKind
}

// DispatchResult summarises one ProcessNewNotice run.
type DispatchResult struct {
	DispatchID               string
	MatchedSubscriptionCount int
	TargetDeviceCount        int
	SuccessCount             int
	FailureCount             int
	Failures                 []DeliveryFailure
}

// DeliveredCount is the number of devices that accepted the push.
func (r DispatchResult) DeliveredCount() int {
	return r.SuccessCount
}

// Config tunes the fan-out.
type Config struct {
	BatchSize    int
	ChunkDelay   time.Duration
	ChunkTimeout time.Duration
}

const (
	DefaultBatchSize    = fcm.MaxBatchSize
	DefaultChunkDelay   = 100 * time.Millisecond
	DefaultChunkTimeout = 30 * time.Second
)

func DefaultConfig() Config {
	return Config{
		BatchSize:    DefaultBatchSize,
		ChunkDelay:   DefaultChunkDelay,
		ChunkTimeout: DefaultChunkTimeout,
	}
}

type ListHistoryInput struct {
	PaginateQuery paginator.PaginateQuery
}

type ListHistoryOutput struct {
	Histories []model.NotificationHistory
	Paginator paginator.Paginator
}
