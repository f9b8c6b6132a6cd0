package fcm

import (
	"context"
	"fmt"

	"github.com/codeGROOVE-dev/retry"

	"firebase.google.com/go/v4/messaging"
)

// MaskToken hides all but the edges of a device token for logging.
func MaskToken(token string) string {
	if len(token) <= 10 {
		return "***"
	}
	return token[:5] + "..." + token[len(token)-5:]
}

func notification(msg Message) *messaging.Notification {
	return &messaging.Notification{Title: msg.Title, Body: msg.Body}
}

func androidConfig() *messaging.AndroidConfig {
	return &messaging.AndroidConfig{
		Priority: androidPriority,
		Notification: &messaging.AndroidNotification{
			Sound: defaultSound,
			Color: androidColor,
		},
	}
}

func apnsConfig() *messaging.APNSConfig {
	return &messaging.APNSConfig{
		Payload: &messaging.APNSPayload{
			Aps: &messaging.Aps{Sound: defaultSound},
		},
	}
}

// do runs call, retrying transient provider errors within ctx.
func (f *fcmImpl) do(ctx context.Context, op string, call func() error) error {
	var lastErr error
	err := retry.Do(
		func() error {
			lastErr = call()
			return lastErr
		},
		retry.Attempts(f.cfg.RetryAttempts),
		retry.Delay(f.cfg.RetryDelay),
		retry.MaxDelay(f.cfg.RetryMaxDelay),
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			return Classify(err) == ErrorKindTransient
		}),
		retry.OnRetry(func(n uint, err error) {
			f.l.Warnf(ctx, "pkg.fcm.%s: attempt %d failed: %v", op, n+1, err)
		}),
	)
	if err == nil {
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return err
}

func (f *fcmImpl) SendSingle(ctx context.Context, token string, msg Message) error {
	if token == "" {
		return ErrEmptyToken
	}

	m := &messaging.Message{
		Token:        token,
		Notification: notification(msg),
		Data:         msg.Data,
		Android:      androidConfig(),
		APNS:         apnsConfig(),
	}

	var id string
	err := f.do(ctx, "SendSingle", func() (err error) {
		id, err = f.client.Send(ctx, m)
		return err
	})
	if err != nil {
		f.l.Warnf(ctx, "pkg.fcm.SendSingle: token=%s kind=%s: %v", MaskToken(token), Classify(err), err)
		return err
	}

	f.l.Debugf(ctx, "pkg.fcm.SendSingle: token=%s message_id=%s", MaskToken(token), id)
	return nil
}

func (f *fcmImpl) SendBatch(ctx context.Context, tokens []string, msg Message) (BatchResult, error) {
	if len(tokens) > MaxBatchSize {
		return BatchResult{}, fmt.Errorf("%w: got %d", ErrBatchTooLarge, len(tokens))
	}
	if len(tokens) == 0 {
		return BatchResult{}, nil
	}

	m := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: notification(msg),
		Data:         msg.Data,
		Android:      androidConfig(),
		APNS:         apnsConfig(),
	}

	var resp *messaging.BatchResponse
	err := f.do(ctx, "SendBatch", func() (err error) {
		resp, err = f.client.SendEachForMulticast(ctx, m)
		return err
	})
	if err != nil {
		f.l.Errorf(ctx, "pkg.fcm.SendBatch: %d tokens, kind=%s: %v", len(tokens), Classify(err), err)
		return BatchResult{}, err
	}

	res := BatchResult{SuccessCount: resp.SuccessCount, FailureCount: resp.FailureCount}
	for i, r := range resp.Responses {
		if r == nil || r.Success || i >= len(tokens) {
			continue
		}
		kind := Classify(r.Error)
		if kind == "" {
			kind = ErrorKindUnknown
		}
		res.Failures = append(res.Failures, TokenFailure{Index: i, Token: tokens[i], Kind: kind, Err: r.Error})
		f.l.Warnf(ctx, "pkg.fcm.SendBatch: token=%s kind=%s: %v", MaskToken(tokens[i]), kind, r.Error)
	}

	f.l.Infof(ctx, "pkg.fcm.SendBatch: sent=%d success=%d failure=%d", len(tokens), res.SuccessCount, res.FailureCount)
	return res, nil
}

func (f *fcmImpl) SendTopic(ctx context.Context, topic string, msg Message) error {
	if topic == "" {
		return ErrEmptyTopic
	}

	m := &messaging.Message{
		Topic:        topic,
		Notification: notification(msg),
		Data:         msg.Data,
		Android:      androidConfig(),
		APNS:         apnsConfig(),
	}

	var id string
	err := f.do(ctx, "SendTopic", func() (err error) {
		id, err = f.client.Send(ctx, m)
		return err
	})
	if err != nil {
		f.l.Errorf(ctx, "pkg.fcm.SendTopic: topic=%s: %v", topic, err)
		return err
	}

	f.l.Infof(ctx, "pkg.fcm.SendTopic: topic=%s message_id=%s", topic, id)
	return nil
}
