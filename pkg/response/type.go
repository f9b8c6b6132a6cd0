package response

import (
	"ttiring-notification-srv/pkg/errors"
)

type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping translates domain errors into HTTP errors.
type ErrorMapping map[error]*errors.HTTPError
