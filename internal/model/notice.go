package model

import (
	"time"

	"ttiring-notification-srv/internal/dbmodel"
)

// Notice is a crawled announcement. The crawler owns it; this service only reads it.
type Notice struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Content      *string    `json:"content,omitempty"`
	URL          string     `json:"url"`
	CategoryID   *int64     `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name,omitempty"`
	IsImportant  bool       `json:"is_important"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
}

// ContentOrEmpty returns the body text, treating a missing body as "".
func (n Notice) ContentOrEmpty() string {
	if n.Content == nil {
		return ""
	}
	return *n.Content
}

func NewNoticeFromDB(db dbmodel.Notice) Notice {
	n := Notice{
		ID:           db.ID,
		Title:        db.Title,
		URL:          db.URL,
		CategoryName: db.CategoryName.String,
		IsImportant:  db.IsImportant,
	}
	if db.Content.Valid {
		n.Content = &db.Content.String
	}
	if db.CategoryID.Valid {
		n.CategoryID = &db.CategoryID.Int64
	}
	if db.PublishedAt.Valid {
		n.PublishedAt = &db.PublishedAt.Time
	}
	return n
}
