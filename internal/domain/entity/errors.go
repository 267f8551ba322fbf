package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned before any host call when an input has
	// the wrong shape: a non-positive tab id, a nil selection, a negative shift.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when a lookup in the tab view yields nothing.
	ErrNotFound = errors.New("not found")

	// ErrHostOperation matches every HostOperationError via errors.Is.
	ErrHostOperation = errors.New("host operation failed")
)

// HostOperationError wraps a rejection from the host tab capability.
type HostOperationError struct {
	Op    string
	TabID TabID
	Err   error
}

func (e *HostOperationError) Error() string {
	if e.TabID.Valid() {
		return fmt.Sprintf("%s tab %d: %v", e.Op, e.TabID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *HostOperationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrHostOperation) match any host failure.
func (e *HostOperationError) Is(target error) bool {
	return target == ErrHostOperation
}

// NewHostError wraps err as a HostOperationError, or returns nil.
func NewHostError(op string, tabID TabID, err error) error {
	if err == nil {
		return nil
	}
	return &HostOperationError{Op: op, TabID: tabID, Err: err}
}

// InvalidArgumentf formats an ErrInvalidArgument with context.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
