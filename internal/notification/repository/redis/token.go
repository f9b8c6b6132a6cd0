package redis

import (
	"context"

	"github.com/friendsofgo/errors"
)

// MarkInvalid adds tokens to the invalid-token set and extends its lifetime.
func (r *implRepository) MarkInvalid(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	members := make([]any, len(tokens))
	for i, t := range tokens {
		members[i] = t
	}
	if _, err := r.redis.SAdd(ctx, invalidTokensKey, members...); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.redis.MarkInvalid.SAdd: %v", err)
		return errors.Wrap(err, "mark invalid tokens")
	}
	if err := r.redis.Expire(ctx, invalidTokensKey, invalidTokensTTL); err != nil {
		r.l.Warnf(ctx, "internal.notification.repository.redis.MarkInvalid.Expire: %v", err)
	}
	return nil
}
