package model

import (
	"time"

	"ttiring-notification-srv/internal/dbmodel"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	PushToken *string   `json:"-"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Token returns the registered device token or "".
func (u User) Token() string {
	if u.PushToken == nil {
		return ""
	}
	return *u.PushToken
}

func NewUserFromDB(db dbmodel.User) User {
	u := User{
		ID:        db.ID,
		Email:     db.Email,
		Name:      db.Name.String,
		IsActive:  db.IsActive,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}
	if db.PushToken.Valid {
		u.PushToken = &db.PushToken.String
	}
	return u
}
