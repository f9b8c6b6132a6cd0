package postgres

import (
	"database/sql"

	"ttiring-notification-srv/internal/notification/repository"
	pkgLog "ttiring-notification-srv/pkg/log"
)

const table = "notification_histories"

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

var _ repository.HistoryRepository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB) repository.HistoryRepository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
