package postgres

import (
	"ttiring-notification-srv/internal/keyword/repository"
	"ttiring-notification-srv/internal/model"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const table = "notification_keywords"

var columns = []string{
	"k.id", "k.user_id", "k.keyword", "k.category_id", "k.is_active",
	"k.matched_count", "k.last_notified_at", "k.created_at", "k.updated_at",
}

const returning = "id, user_id, keyword, category_id, is_active, matched_count, last_notified_at, created_at, updated_at"

func (r *implRepository) buildMatchQuery(opts repository.FindMatchingOptions) []qm.QueryMod {
	sel := append(append([]string{}, columns...),
		"u.push_token AS push_token",
		"u.is_active AS user_active",
	)

	mods := []qm.QueryMod{
		qm.Select(sel...),
		qm.From(table + " AS k"),
		qm.InnerJoin("users AS u ON u.id = k.user_id"),
		qm.Where("k.is_active = TRUE"),
		qm.Where("u.is_active = TRUE"),
		qm.Where("u.push_token IS NOT NULL"),
		// strpos is an exact, case-sensitive containment test with no LIKE wildcards.
		qm.Where("(strpos(?, k.keyword) > 0 OR strpos(?, k.keyword) > 0)", opts.Title, opts.Content),
	}

	if opts.CategoryID != nil {
		mods = append(mods, qm.Where("(k.category_id IS NULL OR k.category_id = ?)", *opts.CategoryID))
	} else {
		mods = append(mods, qm.Where("k.category_id IS NULL"))
	}

	return mods
}

func (r *implRepository) buildListQuery(sc model.Scope, opts repository.ListOptions) []qm.QueryMod {
	mods := []qm.QueryMod{
		qm.Select(columns...),
		qm.From(table + " AS k"),
		qm.Where("k.user_id = ?", sc.UserID),
	}
	if opts.ActiveOnly {
		mods = append(mods, qm.Where("k.is_active = TRUE"))
	}
	return append(mods, qm.OrderBy("k.created_at DESC"))
}

func (r *implRepository) buildDetailQuery(sc model.Scope, id int64) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(columns...),
		qm.From(table + " AS k"),
		qm.Where("k.id = ?", id),
		qm.Where("k.user_id = ?", sc.UserID),
	}
}
