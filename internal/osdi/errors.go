package osdi

import (
	"errors"
	"fmt"
)

// maxErrorBody caps how much of a response body is kept in an APIError.
const maxErrorBody = 512

// ErrNoSelfLink is returned when a record cannot be updated because the
// API did not return its self link.
var ErrNoSelfLink = errors.New("osdi: record has no self link")

// APIError is a non-2xx answer from the API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("osdi: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
