package alert

import "time"

type DispatchFailureInput struct {
	DispatchID  string
	NoticeID    int64
	NoticeTitle string
	Stage       string
	Err         error
	OccurredAt  time.Time
}

type DeliveryDegradedInput struct {
	DispatchID   string
	NoticeID     int64
	NoticeTitle  string
	TargetCount  int
	SuccessCount int
	FailureCount int
	// FailuresByKind counts failed tokens per provider error kind.
	FailuresByKind map[string]int
	OccurredAt     time.Time
}

// Outage reports whether nothing was delivered.
func (in DeliveryDegradedInput) Outage() bool {
	return in.TargetCount > 0 && in.SuccessCount == 0
}
