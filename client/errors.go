package client

import (
	"errors"
	"fmt"
)

// Failure taxonomy for the news API. Every error returned by Client
// matches exactly one of these via errors.Is / errors.As.
var (
	// ErrNetwork covers timeouts and connection failures.
	ErrNetwork = errors.New("network failure")

	// ErrDecode covers responses that are not valid JSON arrays.
	ErrDecode = errors.New("malformed response body")
)

// HTTPError is returned for any non-200 response.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Status)
}
