package postgres

import (
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) buildDetailQuery(id int64) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(
			"n.id", "n.title", "n.content", "n.url", "n.category_id",
			"c.name AS category_name", "n.is_important", "n.published_at", "n.created_at",
		),
		qm.From("crawl_notices AS n"),
		qm.LeftOuterJoin("categories AS c ON c.id = n.category_id"),
		qm.Where("n.id = ?", id),
		qm.Limit(1),
	}
}
