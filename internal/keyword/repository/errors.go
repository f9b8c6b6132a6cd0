package repository

import "errors"

var (
	ErrNotFound  = errors.New("keyword not found")
	ErrDuplicate = errors.New("keyword already exists")
)
