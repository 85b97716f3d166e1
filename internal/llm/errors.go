package llm

import (
	"fmt"
	"time"
)

// ValidationError reports malformed or non-conforming model output, such as
// JSON that fails schema checks.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid model output: " + e.Reason
}

// TimeoutError reports that an invocation exceeded its budget.
type TimeoutError struct {
	Budget time.Duration
	Err    error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("model invocation exceeded %v budget: %v", e.Budget, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// TransportError reports a network or provider failure surfaced by an
// adapter.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s provider failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
