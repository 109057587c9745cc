package errors

import "fmt"

// HTTPError carries an HTTP status alongside a caller-facing message.
// Delivery layers build these in mapError; pkg/response knows how to send them.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}
