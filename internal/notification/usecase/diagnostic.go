package usecase

import (
	"context"
	"strconv"

	"ttiring-notification-srv/internal/notification"
	userRepository "ttiring-notification-srv/internal/user/repository"
	"ttiring-notification-srv/pkg/fcm"
)

func (uc *usecase) SendTestNotification(ctx context.Context, userID int64) (bool, error) {
	u, err := uc.userRepo.Detail(ctx, userID)
	if err != nil {
		if err == userRepository.ErrNotFound {
			return false, notification.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.notification.usecase.SendTestNotification.Detail: %v", err)
		return false, err
	}

	token := u.Token()
	if token == "" {
		uc.l.Infof(ctx, "internal.notification.usecase.SendTestNotification: user=%d has no push token", userID)
		return false, nil
	}

	msg := fcm.Message{
		Title: notification.TestTitle,
		Body:  notification.TestBody,
		Data: map[string]string{
			"type":      notification.TypeTest,
			"timestamp": strconv.FormatInt(uc.clock().UnixMilli(), 10),
		},
	}
	if err := uc.sender.SendSingle(ctx, token, msg); err != nil {
		uc.l.Warnf(ctx, "internal.notification.usecase.SendTestNotification: user=%d kind=%s: %v", userID, fcm.Classify(err), err)
		uc.recordInvalidTokens(ctx, []notification.DeliveryFailure{{Token: token, Kind: fcm.Classify(err)}})
		return false, nil
	}
	return true, nil
}
