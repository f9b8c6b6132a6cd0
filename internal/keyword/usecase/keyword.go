package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"ttiring-notification-srv/internal/keyword"
	"ttiring-notification-srv/internal/keyword/repository"
	"ttiring-notification-srv/internal/model"
)

func normalize(kw string) (string, error) {
	kw = strings.TrimSpace(kw)
	if kw == "" {
		return "", keyword.ErrKeywordEmpty
	}
	if utf8.RuneCountInString(kw) > keyword.MaxKeywordLength {
		return "", keyword.ErrKeywordTooLong
	}
	return kw, nil
}

func validateCategory(id *int64) error {
	if id != nil && *id <= 0 {
		return keyword.ErrInvalidCategory
	}
	return nil
}

func mapRepoErr(err error) error {
	switch err {
	case repository.ErrNotFound:
		return keyword.ErrKeywordNotFound
	case repository.ErrDuplicate:
		return keyword.ErrKeywordExists
	}
	return err
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip keyword.ListInput) ([]model.Keyword, error) {
	kws, err := uc.repo.List(ctx, sc, repository.ListOptions{ActiveOnly: ip.ActiveOnly})
	if err != nil {
		uc.l.Errorf(ctx, "internal.keyword.usecase.List: %v", err)
		return nil, err
	}
	return kws, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip keyword.CreateInput) (model.Keyword, error) {
	kw, err := normalize(ip.Keyword)
	if err != nil {
		return model.Keyword{}, err
	}
	if err := validateCategory(ip.CategoryID); err != nil {
		return model.Keyword{}, err
	}

	count, err := uc.repo.Count(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.keyword.usecase.Create.Count: %v", err)
		return model.Keyword{}, err
	}
	if count >= keyword.MaxKeywordsPerUser {
		return model.Keyword{}, keyword.ErrKeywordLimitExceeded
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Keyword: kw, CategoryID: ip.CategoryID})
	if err != nil {
		if err == repository.ErrDuplicate {
			return model.Keyword{}, keyword.ErrKeywordExists
		}
		uc.l.Errorf(ctx, "internal.keyword.usecase.Create: %v", err)
		return model.Keyword{}, err
	}

	uc.l.Infof(ctx, "internal.keyword.usecase.Create: user=%d keyword_id=%d", sc.UserID, created.ID)
	return created, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip keyword.UpdateInput) (model.Keyword, error) {
	cur, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Keyword{}, keyword.ErrKeywordNotFound
		}
		uc.l.Errorf(ctx, "internal.keyword.usecase.Update.Detail: %v", err)
		return model.Keyword{}, err
	}

	opts := repository.UpdateOptions{
		ID:         cur.ID,
		Keyword:    cur.Keyword,
		CategoryID: cur.CategoryID,
		IsActive:   cur.IsActive,
	}
	if ip.Keyword != nil {
		if opts.Keyword, err = normalize(*ip.Keyword); err != nil {
			return model.Keyword{}, err
		}
	}
	switch {
	case ip.ClearCategory:
		opts.CategoryID = nil
	case ip.CategoryID != nil:
		if err := validateCategory(ip.CategoryID); err != nil {
			return model.Keyword{}, err
		}
		opts.CategoryID = ip.CategoryID
	}
	if ip.IsActive != nil {
		opts.IsActive = *ip.IsActive
	}

	updated, err := uc.repo.Update(ctx, sc, opts)
	if err != nil {
		if mapped := mapRepoErr(err); mapped != err {
			return model.Keyword{}, mapped
		}
		uc.l.Errorf(ctx, "internal.keyword.usecase.Update: %v", err)
		return model.Keyword{}, err
	}
	return updated, nil
}

func (uc *usecase) Toggle(ctx context.Context, sc model.Scope, id int64) (model.Keyword, error) {
	cur, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Keyword{}, keyword.ErrKeywordNotFound
		}
		uc.l.Errorf(ctx, "internal.keyword.usecase.Toggle.Detail: %v", err)
		return model.Keyword{}, err
	}

	active := !cur.IsActive
	return uc.Update(ctx, sc, keyword.UpdateInput{ID: id, IsActive: &active})
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return keyword.ErrKeywordNotFound
		}
		uc.l.Errorf(ctx, "internal.keyword.usecase.Delete: %v", err)
		return err
	}
	return nil
}
