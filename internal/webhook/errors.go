package webhook

import "errors"

var (
	ErrNoticeNotFound = errors.New("notice not found")
	ErrInvalidNotice  = errors.New("invalid notice id")
)
