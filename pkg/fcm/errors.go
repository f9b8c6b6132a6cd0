package fcm

import (
	"context"
	"errors"
	"strings"

	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
)

var (
	ErrBatchTooLarge = errors.New("fcm: batch exceeds 500 tokens")
	ErrEmptyToken    = errors.New("fcm: token is empty")
	ErrEmptyTopic    = errors.New("fcm: topic is empty")
)

const invalidTokenMessage = "not a valid FCM registration token"

// Classify maps a provider error onto an ErrorKind. It returns "" for nil.
// ErrorKindInvalidToken is only meaningful for an error tied to a single token.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case messaging.IsUnregistered(err),
		errorutils.IsInvalidArgument(err),
		strings.Contains(err.Error(), invalidTokenMessage):
		return ErrorKindInvalidToken
	case errors.Is(err, context.DeadlineExceeded), errorutils.IsDeadlineExceeded(err):
		return ErrorKindTimeout
	case errorutils.IsUnavailable(err),
		errorutils.IsInternal(err),
		errorutils.IsResourceExhausted(err),
		messaging.IsQuotaExceeded(err):
		return ErrorKindTransient
	default:
		return ErrorKindUnknown
	}
}
