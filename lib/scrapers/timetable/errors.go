package timetable

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// InvalidParameterError indicates the caller supplied a malformed or
// unrecognized search parameter. Retrying without correcting the input
// will not help.
type InvalidParameterError struct {
	Name   string
	Value  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid parameter: %s", e.Reason)
	}
	return fmt.Sprintf("invalid parameter %s=%q: %s", e.Name, e.Value, e.Reason)
}

// TransportError indicates the HTTP exchange itself failed: network
// error, timeout or a non-2xx status. These are retryable by the
// caller; the client makes a single best-effort attempt.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %s", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// ParseError indicates the returned page did not have the structure
// this client expects, which usually means the remote timetable
// changed. Not retryable.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected page structure: %s", e.Reason)
}

// NotFoundError is returned by GetCRN when no section matches the CRN.
type NotFoundError struct {
	CRN      string
	Year     string
	Semester Semester
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no section with crn %s in %s %s", e.CRN, e.Semester, e.Year)
}

// AmbiguousResultError is returned by GetCRN when more than one section
// matches. CRNs are unique within a semester so this should never
// happen, but it is checked rather than assumed.
type AmbiguousResultError struct {
	CRN   string
	Count int
}

func (e *AmbiguousResultError) Error() string {
	return fmt.Sprintf("expected exactly one section with crn %s, got %d", e.CRN, e.Count)
}
