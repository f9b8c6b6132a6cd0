package postgres

import (
	"context"
	"database/sql"

	"ttiring-notification-srv/internal/dbmodel"
	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/user/repository"
	postgresPkg "ttiring-notification-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) Detail(ctx context.Context, id int64) (model.User, error) {
	var row dbmodel.User
	if err := postgresPkg.NewQuery(r.buildDetailQuery(id)...).Bind(ctx, r.db, &row); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Detail.Bind: %v", err)
		return model.User{}, errors.Wrap(err, "user detail")
	}
	return model.NewUserFromDB(row), nil
}

func (r *implRepository) UpdatePushToken(ctx context.Context, opts repository.UpdatePushTokenOptions) error {
	res, err := queries.Raw(
		`UPDATE `+table+` SET push_token = $1, updated_at = $2 WHERE id = $3`,
		null.StringFromPtr(opts.Token), r.clock(), opts.UserID,
	).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.UpdatePushToken.Exec: %v", err)
		return errors.Wrap(err, "update push token")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "update push token rows affected")
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
