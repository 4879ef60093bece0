package store

import (
	"errors"
	"fmt"
)

// ErrStoreClosed is returned by every operation on a closed store.
var ErrStoreClosed = errors.New("store is closed")

// ErrNotFound is returned in strict mode when an update targets an id that
// does not exist. In lenient mode the same dispatch is a silent no-op.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a payload that fails shape or enum validation.
// The snapshot is left unchanged.
type ValidationError struct {
	Action ActionType
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s payload: %s", e.Action, e.Reason)
}

func validationf(action ActionType, format string, args ...any) error {
	return &ValidationError{Action: action, Reason: fmt.Sprintf(format, args...)}
}

// ConflictError reports an action that is well-formed but collides with the
// current snapshot: a duplicate id on an add, or an illegal booking status
// jump. Only raised in strict mode.
type ConflictError struct {
	Action ActionType
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflicts with current state: %s", e.Action, e.Reason)
}

func conflictf(action ActionType, format string, args ...any) error {
	return &ConflictError{Action: action, Reason: fmt.Sprintf(format, args...)}
}
