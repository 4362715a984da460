package service

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all use cases. Callers match with errors.Is for the
// sentinels and errors.As for *StorageError.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrStorageDisabled = errors.New("export storage is not configured")
)

// StorageError wraps a persistence gateway failure. It is opaque to the
// caller apart from the operation name.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
