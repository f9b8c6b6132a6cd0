package keyword

// MaxKeywordsPerUser caps how many filters one user may register.
const MaxKeywordsPerUser = 20

// MaxKeywordLength is the column width of notification_keywords.keyword, in characters.
const MaxKeywordLength = 50

type ListInput struct {
	ActiveOnly bool
}

type CreateInput struct {
	Keyword    string
	CategoryID *int64
}

// UpdateInput changes only the non-nil fields. ClearCategory removes the category filter.
type UpdateInput struct {
	ID            int64
	Keyword       *string
	CategoryID    *int64
	ClearCategory bool
	IsActive      *bool
}
