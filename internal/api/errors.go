package api

import (
	"errors"
	"fmt"
)

// FetchError is returned by every gateway call that did not succeed.
// Transport failures and non-2xx responses are reported the same way;
// the cause is kept only as text for diagnostics.
type FetchError struct {
	// Op names the failed operation, e.g. "list todos".
	Op string
	// Detail describes the underlying failure.
	Detail string
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Op, e.Detail)
}

func newFetchError(op string, cause error) *FetchError {
	return &FetchError{Op: op, Detail: cause.Error()}
}

// IsFetchError checks if an error is a FetchError and returns it.
func IsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// statusError describes a non-2xx response before it is folded into a FetchError.
type statusError struct {
	StatusCode int
	Message    string
}

func (e *statusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}
