package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrCityNotFound means no record exists for the requested city id.
	ErrCityNotFound = errors.New("city not found")

	// ErrNoPlan means the city is known but resolution produced zero
	// activities.
	ErrNoPlan = errors.New("no plan available")

	// ErrDataUnavailable means upstream data could not be fetched and no
	// cached copy exists.
	ErrDataUnavailable = errors.New("travel data unavailable")
)

// ValidationError reports a rejected input field. It is always recoverable:
// handlers render it as a 400, never as a crash.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
