package upstream

import (
	"errors"
	"fmt"
)

var (
	// ErrStatus marks a response with a non-2xx status code.
	ErrStatus = errors.New("unexpected status code")
	// ErrMalformedBody marks a response body that could not be decoded or validated.
	ErrMalformedBody = errors.New("malformed response body")
	// ErrCircuitOpen is returned without contacting the service while its breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	errNoHTTPClient = errors.New("http client not configured")
)

// Error reports a failed call to a collaborator endpoint: a transport
// failure, a non-success status, or a body that could not be used.
type Error struct {
	Service    string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 && errors.Is(e.Err, ErrStatus) {
		return fmt.Sprintf("%s: HTTP error! status: %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Malformed builds an *Error for a body that decoded but failed validation.
func Malformed(service string, cause error) *Error {
	return &Error{Service: service, Err: fmt.Errorf("%w: %v", ErrMalformedBody, cause)}
}
