package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("booking not found")
	ErrUnknownRoomType = errors.New("unknown room type")

	// ErrCancellationWindow: cancellation was attempted inside the
	// 2-day window before check-in.
	ErrCancellationWindow = errors.New("cancellation window closed")
)

// ValidationError names the first violated input rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError wraps any failure of the underlying store (network,
// throttling, permission). It is not retried at this layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
