package errors

import (
	"errors"
	"fmt"
)

// ConflictError is returned when a write carries an updatedAt token
// older than the stored document's. Recoverable: the caller re-fetches
// and retries, or forces the write.
type ConflictError struct {
	PrevUpdatedAt string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("document changed since %s", e.PrevUpdatedAt)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	_, ok := target.(*ConflictError)
	return ok
}

// WriteError wraps a persistence failure. Nothing is persisted unless
// validation fully succeeded, so the stored document is untouched.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthenticationError
func (e *AuthenticationError) Is(target error) bool {
	_, ok := target.(*AuthenticationError)
	return ok
}

// IsConflict reports whether err is a concurrency conflict.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
