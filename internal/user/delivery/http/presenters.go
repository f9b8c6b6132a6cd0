package http

import (
	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/user"
	"ttiring-notification-srv/pkg/response"
)

type updatePushTokenReq struct {
	PushToken string `json:"pushToken" binding:"required"`
}

func (r updatePushTokenReq) toInput() user.UpdatePushTokenInput {
	return user.UpdatePushTokenInput{Token: r.PushToken}
}

type userResp struct {
	ID                  int64             `json:"id"`
	Email               string            `json:"email"`
	Name                string            `json:"name,omitempty"`
	IsActive            bool              `json:"isActive"`
	PushTokenRegistered bool              `json:"pushTokenRegistered"`
	CreatedAt           response.DateTime `json:"createdAt"`
}

func (h *Handler) newUserResp(u model.User) userResp {
	return userResp{
		ID:                  u.ID,
		Email:               u.Email,
		Name:                u.Name,
		IsActive:            u.IsActive,
		PushTokenRegistered: u.Token() != "",
		CreatedAt:           response.DateTime(u.CreatedAt),
	}
}
