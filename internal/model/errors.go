package model

import (
	"errors"
	"fmt"
)

// ErrJobNotFound is returned when the API has no job for the requested ID.
var ErrJobNotFound = errors.New("job not found")

// HTTPError wraps a non-2xx status code returned by the job API.
type HTTPError struct {
	StatusCode int
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
