package sched

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every ValidationError.
var ErrInvalid = errors.New("invalid simulation input")

// ValidationError reports malformed input rejected before a simulation starts.
type ValidationError struct {
	PID    PID // empty when the error is not tied to one process
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.PID == Idle {
		return fmt.Sprintf("%v: %s %s", ErrInvalid, e.Field, e.Reason)
	}
	return fmt.Sprintf("%v: process %s: %s %s", ErrInvalid, e.PID, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

func invalid(pid PID, field, reason string) error {
	return &ValidationError{PID: pid, Field: field, Reason: reason}
}
