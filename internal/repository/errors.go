package repository

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDatabase is returned by Open for an unknown DATABASE_URL scheme.
var ErrUnsupportedDatabase = errors.New("unsupported database url")

// StorageError wraps a failure to reach the store or commit a write.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
