package octopus

import (
	"errors"
	"fmt"
)

// ErrFetch is the root of every error returned by FetchProducts.
var ErrFetch = errors.New("octopus: fetch failed")

// maxErrorBody caps how much of an error response is kept on StatusError.
const maxErrorBody = 512

// StatusError is returned when Octopus answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("octopus returned %d", e.StatusCode)
	}
	return fmt.Sprintf("octopus returned %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrFetch }

func newStatusError(status int, body []byte) *StatusError {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &StatusError{StatusCode: status, Body: string(body)}
}
