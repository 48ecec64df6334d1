package client

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound reports that the target of a mutation no longer exists
// remotely. It is always wrapped in a *TransportError.
var ErrRecordNotFound = errors.New("record not found")

// TransportError describes a failed request: either the call never completed
// (StatusCode 0) or the server answered outside the 2xx range.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
	err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Message)
	}
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
}

func (e *TransportError) Unwrap() error { return e.err }
