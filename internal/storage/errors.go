package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup by external id matches no record.
	ErrNotFound = errors.New("storage: not found")
	// ErrDuplicate is returned when an insert collides with an existing external id.
	ErrDuplicate = errors.New("storage: duplicate id")
	// ErrMissingField is returned when a stored record lacks a required field.
	ErrMissingField = errors.New("storage: missing required field")
)

// ConfigurationError reports that the connection string is absent.
type ConfigurationError struct {
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("storage: connection string is not defined (%s)", e.Variable)
}

// ConnectionError reports a failed connect or ping. The connection stays unset so the next call retries.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("storage: connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failed repository call made after a connection was obtained.
type PersistenceError struct {
	Op         string
	Collection string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage: %s on %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Wrap returns err wrapped in a PersistenceError, or nil when err is nil. Configuration and
// connection errors pass through unchanged so callers can still tell them apart.
func Wrap(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	var cfgErr *ConfigurationError
	var connErr *ConnectionError
	if errors.As(err, &cfgErr) || errors.As(err, &connErr) {
		return err
	}
	return &PersistenceError{Op: op, Collection: collection, Err: err}
}
