package dbmodel

import (
	"time"

	"github.com/aarondl/null/v8"
)

// User is a row of users.
type User struct {
	ID        int64       `boil:"id"`
	Email     string      `boil:"email"`
	Name      null.String `boil:"name"`
	PushToken null.String `boil:"push_token"`
	IsActive  bool        `boil:"is_active"`
	CreatedAt time.Time   `boil:"created_at"`
	UpdatedAt time.Time   `boil:"updated_at"`
}
