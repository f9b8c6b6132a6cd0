package scope

import "errors"

var (
	// ErrInvalidToken is returned when a JWT token is invalid, expired, or malformed.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidSubject is returned when the sub claim is not a positive user id.
	ErrInvalidSubject = errors.New("invalid token subject")
)
