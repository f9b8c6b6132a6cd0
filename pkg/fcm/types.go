package fcm

import (
	"time"

	"ttiring-notification-srv/pkg/log"
)

// Message is the provider-neutral content of a push.
type Message struct {
	Title string
	Body  string
	Data  map[string]string
}

// ErrorKind classifies a delivery failure.
type ErrorKind string

const (
	// ErrorKindInvalidToken means the token will never accept messages again.
	ErrorKindInvalidToken ErrorKind = "invalid_token"
	ErrorKindTimeout      ErrorKind = "timeout"
	ErrorKindTransient    ErrorKind = "transient"
	ErrorKindUnknown      ErrorKind = "unknown"
)

// TokenFailure is one rejected token of a multicast send.
type TokenFailure struct {
	Index int
	Token string
	Kind  ErrorKind
	Err   error
}

// BatchResult aggregates a multicast send.
type BatchResult struct {
	SuccessCount int
	FailureCount int
	Failures     []TokenFailure
}

// Config tunes retries of whole-call provider errors.
type Config struct {
	RetryAttempts uint
	RetryDelay    time.Duration
	RetryMaxDelay time.Duration
}

type fcmImpl struct {
	l      log.Logger
	client Client
	cfg    Config
}
