package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrPlaceholderProfile is returned when storage is requested for a placeholder profile.
	ErrPlaceholderProfile = errors.New("profile is a placeholder")

	// ErrStorageUnavailable is returned by stores whose backing database could not be opened.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ConfigIOError reports that the profile configuration file could not be read or written.
// Callers degrade to a placeholder profile instead of stopping.
type ConfigIOError struct {
	Path string
	Op   string
	Err  error
}

func (e *ConfigIOError) Error() string {
	return fmt.Sprintf("profile config %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConfigIOError) Unwrap() error {
	return e.Err
}

// StorageError reports a failed history or bookmark operation.
// A StorageError means the operation did not happen.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err unless it is nil or already a StorageError.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
