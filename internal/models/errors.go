package models

import (
	"errors"
	"fmt"
)

// PersistenceError reports that the durable medium could not complete a read or write.
// Op names the store operation ("insert", "update", "delete", "query").
type PersistenceError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying driver error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err for operation op. A nil err yields nil.
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsPersistenceError reports whether any error in err's chain is a *PersistenceError
func IsPersistenceError(err error) bool {
	var pErr *PersistenceError
	return errors.As(err, &pErr)
}
