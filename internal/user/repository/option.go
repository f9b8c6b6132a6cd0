package repository

type UpdatePushTokenOptions struct {
	UserID int64
	Token  *string
}
