package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/user"
	"ttiring-notification-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePushToken(t *testing.T) {
	tests := []struct {
		name    string
		users   []model.User
		token   string
		wantErr error
	}{
		{name: "stores trimmed token", users: []model.User{{ID: 1, IsActive: true}}, token: "  tok-1 "},
		{name: "empty", users: []model.User{{ID: 1, IsActive: true}}, token: " ", wantErr: user.ErrPushTokenEmpty},
		{name: "too long", users: []model.User{{ID: 1, IsActive: true}}, token: strings.Repeat("x", user.MaxPushTokenLength+1), wantErr: user.ErrPushTokenTooLong},
		{name: "unknown user", token: "tok", wantErr: user.ErrUserNotFound},
		{name: "inactive user", users: []model.User{{ID: 1}}, token: "tok", wantErr: user.ErrUserInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(tt.users...)
			uc := New(log.NewNop(), repo)

			err := uc.UpdatePushToken(context.Background(), model.Scope{UserID: 1}, user.UpdatePushTokenInput{Token: tt.token})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			u, err := repo.Detail(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, "tok-1", u.Token())
		})
	}
}

func TestClearPushToken(t *testing.T) {
	tok := "tok"
	repo := newFakeRepo(model.User{ID: 1, IsActive: true, PushToken: &tok})
	uc := New(log.NewNop(), repo)

	require.NoError(t, uc.ClearPushToken(context.Background(), model.Scope{UserID: 1}))

	u, err := uc.DetailMe(context.Background(), model.Scope{UserID: 1})
	require.NoError(t, err)
	assert.Nil(t, u.PushToken)

	assert.ErrorIs(t, uc.ClearPushToken(context.Background(), model.Scope{UserID: 2}), user.ErrUserNotFound)
}

func TestUpdatePushTokenRepositoryFailure(t *testing.T) {
	repo := newFakeRepo(model.User{ID: 1, IsActive: true})
	repo.err = errors.New("connection refused")
	uc := New(log.NewNop(), repo)

	err := uc.UpdatePushToken(context.Background(), model.Scope{UserID: 1}, user.UpdatePushTokenInput{Token: "tok"})
	assert.EqualError(t, err, "connection refused")
}
