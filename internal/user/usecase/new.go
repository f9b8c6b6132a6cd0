package usecase

import (
	"ttiring-notification-srv/internal/user"
	"ttiring-notification-srv/internal/user/repository"
	pkgLog "ttiring-notification-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) user.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
