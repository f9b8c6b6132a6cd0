package dbmodel

import (
	"time"

	"github.com/aarondl/null/v8"
)

// NotificationHistory is a row of notification_histories.
type NotificationHistory struct {
	ID           int64       `boil:"id"`
	UserID       int64       `boil:"user_id"`
	NoticeID     int64       `boil:"notice_id"`
	Title        string      `boil:"title"`
	Body         string      `boil:"body"`
	Status       string      `boil:"status"`
	ErrorMessage null.String `boil:"error_message"`
	SentAt       time.Time   `boil:"sent_at"`
}
