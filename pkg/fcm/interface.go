package fcm

import (
	"context"

	"ttiring-notification-srv/pkg/log"

	"firebase.google.com/go/v4/messaging"
)

// IFCM sends push notifications through Firebase Cloud Messaging.
type IFCM interface {
	// SendSingle delivers msg to one device token.
	SendSingle(ctx context.Context, token string, msg Message) error
	// SendBatch delivers msg to at most MaxBatchSize tokens in one multicast call.
	// Per-token failures are reported in the result; the error is reserved for
	// contract violations and whole-call failures.
	SendBatch(ctx context.Context, tokens []string, msg Message) (BatchResult, error)
	// SendTopic delivers msg to every device subscribed to topic.
	SendTopic(ctx context.Context, topic string, msg Message) error
}

// Client is the part of *messaging.Client used by the sender.
type Client interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// New wraps client. Zero Config fields fall back to DefaultConfig.
func New(l log.Logger, client Client, cfg Config) IFCM {
	def := DefaultConfig()
	if cfg.RetryAttempts == 0 {
		cfg.RetryAttempts = def.RetryAttempts
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = def.RetryDelay
	}
	if cfg.RetryMaxDelay == 0 {
		cfg.RetryMaxDelay = def.RetryMaxDelay
	}
	return &fcmImpl{l: l, client: client, cfg: cfg}
}
