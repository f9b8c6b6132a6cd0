package keyword

import "errors"

var (
	ErrKeywordNotFound      = errors.New("keyword not found")
	ErrKeywordExists        = errors.New("keyword already registered")
	ErrKeywordEmpty         = errors.New("keyword is empty")
	ErrKeywordTooLong       = errors.New("keyword is too long")
	ErrKeywordLimitExceeded = errors.New("keyword limit exceeded")
	ErrInvalidCategory      = errors.New("invalid category")
)
