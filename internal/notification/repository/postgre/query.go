package postgres

import (
	"time"

	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/notification/repository"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/lib/pq"
)

const insertManyQuery = `INSERT INTO ` + table + ` (user_id, notice_id, title, body, status, error_message, sent_at)
	SELECT u, n, t, b, s, NULLIF(e, ''), a
	FROM unnest($1::bigint[], $2::bigint[], $3::text[], $4::text[], $5::text[], $6::text[], $7::timestamptz[])
		AS x(u, n, t, b, s, e, a)`

// buildInsertManyArgs lays the rows out column by column for unnest.
func buildInsertManyArgs(rows []model.NotificationHistory) []any {
	var (
		userIDs   = make([]int64, len(rows))
		noticeIDs = make([]int64, len(rows))
		titles    = make([]string, len(rows))
		bodies    = make([]string, len(rows))
		statuses  = make([]string, len(rows))
		errMsgs   = make([]string, len(rows))
		sentAts   = make([]string, len(rows))
	)
	for i, h := range rows {
		userIDs[i] = h.UserID
		noticeIDs[i] = h.NoticeID
		titles[i] = h.Title
		bodies[i] = h.Body
		statuses[i] = string(h.Status)
		errMsgs[i] = h.ErrorMessage
		sentAts[i] = h.SentAt.UTC().Format(time.RFC3339Nano)
	}
	return []any{
		pq.Array(userIDs), pq.Array(noticeIDs), pq.Array(titles), pq.Array(bodies),
		pq.Array(statuses), pq.Array(errMsgs), pq.Array(sentAts),
	}
}

func (r *implRepository) buildListQuery(sc model.Scope, opts repository.ListHistoryOptions) []qm.QueryMod {
	q := opts.PaginateQuery
	q.Adjust()
	return []qm.QueryMod{
		qm.Select("id", "user_id", "notice_id", "title", "body", "status", "error_message", "sent_at"),
		qm.From(table),
		qm.Where("user_id = ?", sc.UserID),
		qm.OrderBy("sent_at DESC, id DESC"),
		qm.Limit(int(q.Limit)),
		qm.Offset(int(q.Offset())),
	}
}
