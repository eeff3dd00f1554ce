// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package europepmc

import "fmt"

// NetworkError reports that a page request did not complete, or completed
// with a non-200 status.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("europepmc request: %v", e.Err)
	}
	return fmt.Sprintf("europepmc request: HTTP %d", e.Status)
}

// Unwrap returns the underlying cause, if any.
func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports that a response body was not in the expected shape.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("europepmc response: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error { return e.Err }
