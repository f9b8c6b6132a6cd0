package redis

import (
	"context"
	"strconv"

	"github.com/friendsofgo/errors"
)

func receivedKey(noticeID int64) string {
	return receivedKeyPrefix + strconv.FormatInt(noticeID, 10)
}

func (r *implRepository) MarkReceived(ctx context.Context, noticeID int64) (bool, error) {
	first, err := r.redis.SetNX(ctx, receivedKey(noticeID), 1, r.ttl)
	if err != nil {
		r.l.Errorf(ctx, "internal.webhook.repository.redis.MarkReceived.SetNX: %v", err)
		return false, errors.Wrap(err, "mark notice received")
	}
	return first, nil
}

func (r *implRepository) Release(ctx context.Context, noticeID int64) error {
	if err := r.redis.Delete(ctx, receivedKey(noticeID)); err != nil {
		r.l.Errorf(ctx, "internal.webhook.repository.redis.Release.Delete: %v", err)
		return errors.Wrap(err, "release notice")
	}
	return nil
}
