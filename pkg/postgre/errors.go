package postgres

import (
	"errors"

	fgerrors "github.com/friendsofgo/errors"
	"github.com/lib/pq"
)

const uniqueViolation pq.ErrorCode = "23505"

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	if pqErr, ok := fgerrors.Cause(err).(*pq.Error); ok {
		return pqErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
