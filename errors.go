package oxymap

import (
	"fmt"
)

// ErrMalformed indicates that an input byte stream could not be decoded
// into the expected record shape. The load that produced it changed
// nothing: the store still holds the contents of the last successful load.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMalformed struct {
	Reason string
	cause  error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed input: %s", e.Reason)
}

func (e *ErrMalformed) Unwrap() error { return e.cause }
