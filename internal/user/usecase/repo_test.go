package usecase

import (
	"context"

	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/user/repository"
)

type fakeRepo struct {
	users map[int64]model.User
	err   error
}

func newFakeRepo(users ...model.User) *fakeRepo {
	r := &fakeRepo{users: make(map[int64]model.User, len(users))}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeRepo) Detail(ctx context.Context, id int64) (model.User, error) {
	if r.err != nil {
		return model.User{}, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeRepo) UpdatePushToken(ctx context.Context, opts repository.UpdatePushTokenOptions) error {
	if r.err != nil {
		return r.err
	}
	u, ok := r.users[opts.UserID]
	if !ok {
		return repository.ErrNotFound
	}
	u.PushToken = nil
	if opts.Token != nil {
		tok := *opts.Token
		u.PushToken = &tok
	}
	r.users[u.ID] = u
	return nil
}
