package usecase

import (
	"context"
	"sort"
	"time"

	"ttiring-notification-srv/internal/keyword/repository"
	"ttiring-notification-srv/internal/model"
)

// fakeRepo keeps keywords in a map and enforces the (user_id, keyword) uniqueness of the table.
type fakeRepo struct {
	repository.Repository

	nextID   int64
	keywords map[int64]model.Keyword
	err      error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{keywords: make(map[int64]model.Keyword)}
}

func (r *fakeRepo) seed(k model.Keyword) model.Keyword {
	r.nextID++
	k.ID = r.nextID
	r.keywords[k.ID] = k
	return k
}

func (r *fakeRepo) owned(sc model.Scope, id int64) (model.Keyword, bool) {
	k, ok := r.keywords[id]
	return k, ok && k.UserID == sc.UserID
}

func (r *fakeRepo) exists(userID int64, kw string, exceptID int64) bool {
	for id, k := range r.keywords {
		if id != exceptID && k.UserID == userID && k.Keyword == kw {
			return true
		}
	}
	return false
}

func (r *fakeRepo) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Keyword, error) {
	if r.err != nil {
		return nil, r.err
	}

	var out []model.Keyword
	for _, k := range r.keywords {
		if k.UserID == sc.UserID && (!opts.ActiveOnly || k.IsActive) {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) Detail(ctx context.Context, sc model.Scope, id int64) (model.Keyword, error) {
	if r.err != nil {
		return model.Keyword{}, r.err
	}
	k, ok := r.owned(sc, id)
	if !ok {
		return model.Keyword{}, repository.ErrNotFound
	}
	return k, nil
}

func (r *fakeRepo) Count(ctx context.Context, sc model.Scope) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}

	var n int64
	for _, k := range r.keywords {
		if k.UserID == sc.UserID {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Keyword, error) {
	if r.err != nil {
		return model.Keyword{}, r.err
	}
	if r.exists(sc.UserID, opts.Keyword, 0) {
		return model.Keyword{}, repository.ErrDuplicate
	}

	now := time.Now()
	return r.seed(model.Keyword{
		UserID:     sc.UserID,
		Keyword:    opts.Keyword,
		CategoryID: opts.CategoryID,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}), nil
}

func (r *fakeRepo) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Keyword, error) {
	if r.err != nil {
		return model.Keyword{}, r.err
	}
	k, ok := r.owned(sc, opts.ID)
	if !ok {
		return model.Keyword{}, repository.ErrNotFound
	}
	if r.exists(sc.UserID, opts.Keyword, opts.ID) {
		return model.Keyword{}, repository.ErrDuplicate
	}

	k.Keyword = opts.Keyword
	k.CategoryID = opts.CategoryID
	k.IsActive = opts.IsActive
	k.UpdatedAt = time.Now()
	r.keywords[k.ID] = k
	return k, nil
}

func (r *fakeRepo) Delete(ctx context.Context, sc model.Scope, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.owned(sc, id); !ok {
		return repository.ErrNotFound
	}
	delete(r.keywords, id)
	return nil
}
