package postgres

import (
	"context"
	"database/sql"

	"ttiring-notification-srv/internal/dbmodel"
	"ttiring-notification-srv/internal/keyword/repository"
	"ttiring-notification-srv/internal/model"
	postgresPkg "ttiring-notification-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func nullInt64(v *int64) null.Int64 {
	return null.Int64FromPtr(v)
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Keyword, error) {
	var rows []dbmodel.Keyword
	if err := postgresPkg.NewQuery(r.buildListQuery(sc, opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.keyword.repository.postgres.List.Bind: %v", err)
		return nil, errors.Wrap(err, "list keywords")
	}

	res := make([]model.Keyword, len(rows))
	for i, row := range rows {
		res[i] = model.NewKeywordFromDB(row)
	}
	return res, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id int64) (model.Keyword, error) {
	var row dbmodel.Keyword
	if err := postgresPkg.NewQuery(r.buildDetailQuery(sc, id)...).Bind(ctx, r.db, &row); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return model.Keyword{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.keyword.repository.postgres.Detail.Bind: %v", err)
		return model.Keyword{}, errors.Wrap(err, "keyword detail")
	}
	return model.NewKeywordFromDB(row), nil
}

func (r *implRepository) Count(ctx context.Context, sc model.Scope) (int64, error) {
	var out struct {
		Count int64 `boil:"count"`
	}
	err := queries.Raw(`SELECT count(*) AS count FROM `+table+` WHERE user_id = $1`, sc.UserID).
		Bind(ctx, r.db, &out)
	if err != nil {
		r.l.Errorf(ctx, "internal.keyword.repository.postgres.Count.Bind: %v", err)
		return 0, errors.Wrap(err, "count keywords")
	}
	return out.Count, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Keyword, error) {
	now := r.clock()

	var row dbmodel.Keyword
	err := queries.Raw(
		`INSERT INTO `+table+` (user_id, keyword, category_id, is_active, matched_count, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, 0, $4, $4)
		RETURNING `+returning,
		sc.UserID, opts.Keyword, nullInt64(opts.CategoryID), now,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if postgresPkg.IsUniqueViolation(err) {
			return model.Keyword{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.keyword.repository.postgres.Create.Bind: %v", err)
		return model.Keyword{}, errors.Wrap(err, "create keyword")
	}
	return model.NewKeywordFromDB(row), nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Keyword, error) {
	var row dbmodel.Keyword
	err := queries.Raw(
		`UPDATE `+table+`
		SET keyword = $3, category_id = $4, is_active = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2
		RETURNING `+returning,
		opts.ID, sc.UserID, opts.Keyword, nullInt64(opts.CategoryID), opts.IsActive, r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		switch {
		case errors.Cause(err) == sql.ErrNoRows:
			return model.Keyword{}, repository.ErrNotFound
		case postgresPkg.IsUniqueViolation(err):
			return model.Keyword{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.keyword.repository.postgres.Update.Bind: %v", err)
		return model.Keyword{}, errors.Wrap(err, "update keyword")
	}
	return model.NewKeywordFromDB(row), nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id int64) error {
	res, err := queries.Raw(`DELETE FROM `+table+` WHERE id = $1 AND user_id = $2`, id, sc.UserID).
		ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.keyword.repository.postgres.Delete.Exec: %v", err)
		return errors.Wrap(err, "delete keyword")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete keyword rows affected")
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
