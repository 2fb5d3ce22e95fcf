package payment

import (
	"errors"
	"fmt"
)

// ErrNoResult matches every failure where no status code was obtained or the
// reply carried nothing to decode.
var ErrNoResult = errors.New("pix service returned no result")

var ErrEmptyResponse = fmt.Errorf("empty response body: %w", ErrNoResult)

// TransportError is a failure before any HTTP status was known: dial, TLS,
// timeout, cancellation or a broken body stream.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "pix transport failure: " + e.Err.Error()
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrNoResult, e.Err}
}

// StatusError is returned for any non-2xx reply.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pix request failed with status %d", e.Code)
}

// DecodeError is returned when a 2xx body is not valid JSON for Response.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode pix response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
