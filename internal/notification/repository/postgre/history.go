package postgres

import (
	"context"

	"ttiring-notification-srv/internal/dbmodel"
	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/notification/repository"
	"ttiring-notification-srv/pkg/paginator"
	postgresPkg "ttiring-notification-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) CreateMany(ctx context.Context, opts repository.CreateHistoriesOptions) error {
	if len(opts.Histories) == 0 {
		return nil
	}

	if _, err := queries.Raw(insertManyQuery, buildInsertManyArgs(opts.Histories)...).ExecContext(ctx, r.db); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.CreateMany.Exec: %v", err)
		return errors.Wrap(err, "insert notification histories")
	}
	return nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListHistoryOptions) ([]model.NotificationHistory, paginator.Paginator, error) {
	q := opts.PaginateQuery
	q.Adjust()

	var count struct {
		Count int64 `boil:"count"`
	}
	if err := queries.Raw(`SELECT count(*) AS count FROM `+table+` WHERE user_id = $1`, sc.UserID).Bind(ctx, r.db, &count); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.List.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "count notification histories")
	}

	var rows []dbmodel.NotificationHistory
	if err := postgresPkg.NewQuery(r.buildListQuery(sc, opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.List.Bind: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "list notification histories")
	}

	res := make([]model.NotificationHistory, len(rows))
	for i, row := range rows {
		res[i] = model.NewNotificationHistoryFromDB(row)
	}
	return res, paginator.Paginator{
		Total:       count.Count,
		Count:       int64(len(res)),
		PerPage:     q.Limit,
		CurrentPage: q.Page,
	}, nil
}
