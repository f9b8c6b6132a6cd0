package postgres

import (
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

var userColumns = []string{"id", "email", "name", "push_token", "is_active", "created_at", "updated_at"}

func (r *implRepository) buildDetailQuery(id int64) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(userColumns...),
		qm.From(table),
		qm.Where("id = ?", id),
		qm.Limit(1),
	}
}
