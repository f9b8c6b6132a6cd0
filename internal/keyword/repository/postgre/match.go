package postgres

import (
	"context"

	"ttiring-notification-srv/internal/dbmodel"
	"ttiring-notification-srv/internal/keyword/repository"
	"ttiring-notification-srv/internal/model"
	postgresPkg "ttiring-notification-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
	"github.com/lib/pq"
)

func (r *implRepository) FindMatching(ctx context.Context, opts repository.FindMatchingOptions) ([]model.KeywordMatch, error) {
	var rows []dbmodel.KeywordMatch
	if err := postgresPkg.NewQuery(r.buildMatchQuery(opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.keyword.repository.postgres.FindMatching.Bind: %v", err)
		return nil, errors.Wrap(err, "find matching keywords")
	}

	res := make([]model.KeywordMatch, len(rows))
	for i, row := range rows {
		res[i] = model.NewKeywordMatchFromDB(row)
	}
	return res, nil
}

func (r *implRepository) IncrementMatched(ctx context.Context, opts repository.IncrementMatchedOptions) error {
	if len(opts.IDs) == 0 {
		return nil
	}

	// Row-level increments keep concurrent dispatches from losing counts.
	_, err := queries.Raw(
		`UPDATE `+table+`
		SET matched_count = matched_count + 1, last_notified_at = $1, updated_at = $1
		WHERE id = ANY($2)`,
		opts.NotifiedAt, pq.Array(opts.IDs),
	).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.keyword.repository.postgres.IncrementMatched.Exec: %v", err)
		return errors.Wrap(err, "increment keyword statistics")
	}
	return nil
}
