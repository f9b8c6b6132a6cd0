package model

import (
	"strings"
	"time"

	"ttiring-notification-srv/internal/dbmodel"
)

// Keyword is one user's notification filter: a keyword plus an optional category.
type Keyword struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	Keyword        string     `json:"keyword"`
	CategoryID     *int64     `json:"category_id,omitempty"`
	IsActive       bool       `json:"is_active"`
	MatchedCount   int64      `json:"matched_count"`
	LastNotifiedAt *time.Time `json:"last_notified_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Matches reports whether the keyword applies to a notice with the given text and category.
// Containment is case-sensitive and substring based: "장학" matches "국가장학금".
// A keyword without category matches every category.
func (k Keyword) Matches(title, content string, categoryID *int64) bool {
	if !k.IsActive || k.Keyword == "" {
		return false
	}
	if k.CategoryID != nil && (categoryID == nil || *k.CategoryID != *categoryID) {
		return false
	}
	return strings.Contains(title, k.Keyword) || strings.Contains(content, k.Keyword)
}

// KeywordMatch is a matched keyword together with its owner's delivery state.
type KeywordMatch struct {
	Keyword
	PushToken  string
	UserActive bool
}

// Deliverable reports whether the owner can receive a push.
func (m KeywordMatch) Deliverable() bool {
	return m.UserActive && m.PushToken != ""
}

func NewKeywordFromDB(db dbmodel.Keyword) Keyword {
	k := Keyword{
		ID:           db.ID,
		UserID:       db.UserID,
		Keyword:      db.Keyword,
		IsActive:     db.IsActive,
		MatchedCount: db.MatchedCount,
		CreatedAt:    db.CreatedAt,
		UpdatedAt:    db.UpdatedAt,
	}
	if db.CategoryID.Valid {
		k.CategoryID = &db.CategoryID.Int64
	}
	if db.LastNotifiedAt.Valid {
		k.LastNotifiedAt = &db.LastNotifiedAt.Time
	}
	return k
}

func NewKeywordMatchFromDB(db dbmodel.KeywordMatch) KeywordMatch {
	return KeywordMatch{
		Keyword:    NewKeywordFromDB(db.Keyword),
		PushToken:  db.PushToken.String,
		UserActive: db.UserActive,
	}
}
