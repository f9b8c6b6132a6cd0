package dbmodel

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Keyword is a row of notification_keywords.
type Keyword struct {
	ID             int64      `boil:"id"`
	UserID         int64      `boil:"user_id"`
	Keyword        string     `boil:"keyword"`
	CategoryID     null.Int64 `boil:"category_id"`
	IsActive       bool       `boil:"is_active"`
	MatchedCount   int64      `boil:"matched_count"`
	LastNotifiedAt null.Time  `boil:"last_notified_at"`
	CreatedAt      time.Time  `boil:"created_at"`
	UpdatedAt      time.Time  `boil:"updated_at"`
}

// KeywordMatch is a notification_keywords row joined with its owner.
type KeywordMatch struct {
	Keyword    `boil:",bind"`
	PushToken  null.String `boil:"push_token"`
	UserActive bool        `boil:"user_active"`
}
