package model

import (
	"time"

	"ttiring-notification-srv/internal/dbmodel"
)

type NotificationStatus string

const (
	NotificationStatusSuccess NotificationStatus = "SUCCESS"
	NotificationStatusFailed  NotificationStatus = "FAILED"
	NotificationStatusPending NotificationStatus = "PENDING"
)

// NotificationHistory records one push sent to one user for one notice.
type NotificationHistory struct {
	ID           int64              `json:"id"`
	UserID       int64              `json:"user_id"`
	NoticeID     int64              `json:"notice_id"`
	Title        string             `json:"title"`
	Body         string             `json:"body"`
	Status       NotificationStatus `json:"status"`
	ErrorMessage string             `json:"error_message,omitempty"`
	SentAt       time.Time          `json:"sent_at"`
}

func NewNotificationHistoryFromDB(db dbmodel.NotificationHistory) NotificationHistory {
	return NotificationHistory{
		ID:           db.ID,
		UserID:       db.UserID,
		NoticeID:     db.NoticeID,
		Title:        db.Title,
		Body:         db.Body,
		Status:       NotificationStatus(db.Status),
		ErrorMessage: db.ErrorMessage.String,
		SentAt:       db.SentAt,
	}
}
