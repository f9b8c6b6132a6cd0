package repository

import "time"

type FindMatchingOptions struct {
	Title      string
	Content    string
	CategoryID *int64
}

type IncrementMatchedOptions struct {
	IDs        []int64
	NotifiedAt time.Time
}

type ListOptions struct {
	ActiveOnly bool
}

type CreateOptions struct {
	Keyword    string
	CategoryID *int64
}

// UpdateOptions replaces the user-editable columns of one keyword.
type UpdateOptions struct {
	ID         int64
	Keyword    string
	CategoryID *int64
	IsActive   bool
}
