package usecase

import (
	"ttiring-notification-srv/internal/keyword"
	"ttiring-notification-srv/internal/keyword/repository"
	pkgLog "ttiring-notification-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) keyword.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
