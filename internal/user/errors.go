package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserInactive     = errors.New("user is inactive")
	ErrPushTokenEmpty   = errors.New("push token is empty")
	ErrPushTokenTooLong = errors.New("push token is too long")
)
