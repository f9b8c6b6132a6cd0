package postgres

import (
	"database/sql"
	"time"

	"ttiring-notification-srv/internal/user/repository"
	pkgLog "ttiring-notification-srv/pkg/log"
)

const table = "users"

type implRepository struct {
	l     pkgLog.Logger
	db    *sql.DB
	clock func() time.Time
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB) repository.Repository {
	return &implRepository{
		l:     l,
		db:    db,
		clock: time.Now,
	}
}
