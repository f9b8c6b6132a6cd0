package errors

import "net/http"

// HTTPError is an error that maps directly onto an HTTP response.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError returns an HTTPError whose status code defaults to 400 when statusCode is 0.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{Code: code, Message: message, StatusCode: statusCode}
}

// NewUnauthorizedHTTPError returns a 401 error.
func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{Code: http.StatusUnauthorized, Message: "Unauthorized", StatusCode: http.StatusUnauthorized}
}

// NewTooManyRequestsHTTPError returns a 429 error.
func NewTooManyRequestsHTTPError() *HTTPError {
	return &HTTPError{Code: http.StatusTooManyRequests, Message: "Too many requests", StatusCode: http.StatusTooManyRequests}
}

func (e *HTTPError) Error() string {
	return e.Message
}
