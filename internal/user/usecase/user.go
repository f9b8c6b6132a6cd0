package usecase

import (
	"context"
	"strings"

	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/user"
	"ttiring-notification-srv/internal/user/repository"
	"ttiring-notification-srv/pkg/fcm"
)

func (uc *usecase) DetailMe(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.repo.Detail(ctx, sc.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.DetailMe: %v", err)
		return model.User{}, err
	}
	return u, nil
}

func (uc *usecase) UpdatePushToken(ctx context.Context, sc model.Scope, ip user.UpdatePushTokenInput) error {
	token := strings.TrimSpace(ip.Token)
	if token == "" {
		return user.ErrPushTokenEmpty
	}
	if len(token) > user.MaxPushTokenLength {
		return user.ErrPushTokenTooLong
	}

	u, err := uc.DetailMe(ctx, sc)
	if err != nil {
		return err
	}
	if !u.IsActive {
		return user.ErrUserInactive
	}

	if err := uc.repo.UpdatePushToken(ctx, repository.UpdatePushTokenOptions{UserID: sc.UserID, Token: &token}); err != nil {
		if err == repository.ErrNotFound {
			return user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.UpdatePushToken: %v", err)
		return err
	}

	uc.l.Infof(ctx, "internal.user.usecase.UpdatePushToken: user=%d token=%s", sc.UserID, fcm.MaskToken(token))
	return nil
}

func (uc *usecase) ClearPushToken(ctx context.Context, sc model.Scope) error {
	if err := uc.repo.UpdatePushToken(ctx, repository.UpdatePushTokenOptions{UserID: sc.UserID}); err != nil {
		if err == repository.ErrNotFound {
			return user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.ClearPushToken: %v", err)
		return err
	}
	return nil
}
