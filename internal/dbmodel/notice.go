package dbmodel

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Notice is a row of crawl_notices joined with its category name.
type Notice struct {
	ID           int64       `boil:"id"`
	Title        string      `boil:"title"`
	Content      null.String `boil:"content"`
	URL          string      `boil:"url"`
	CategoryID   null.Int64  `boil:"category_id"`
	CategoryName null.String `boil:"category_name"`
	IsImportant  bool        `boil:"is_important"`
	PublishedAt  null.Time   `boil:"published_at"`
	CreatedAt    time.Time   `boil:"created_at"`
}
