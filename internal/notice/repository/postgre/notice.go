package postgres

import (
	"context"
	"database/sql"

	"ttiring-notification-srv/internal/dbmodel"
	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/notice/repository"
	postgresPkg "ttiring-notification-srv/pkg/postgre"

	"github.com/friendsofgo/errors"
)

func (r *implRepository) Detail(ctx context.Context, id int64) (model.Notice, error) {
	var row dbmodel.Notice
	if err := postgresPkg.NewQuery(r.buildDetailQuery(id)...).Bind(ctx, r.db, &row); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return model.Notice{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.notice.repository.postgres.Detail.Bind: %v", err)
		return model.Notice{}, errors.Wrap(err, "notice detail")
	}
	return model.NewNoticeFromDB(row), nil
}
