package jsonconf

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a key path that does not resolve to a value. It is
// wrapped with the offending key; test with errors.Is.
var ErrNotFound = errors.New("key not found")

func notFound(key string) error {
	return fmt.Errorf("%q: %w", key, ErrNotFound)
}

// ConversionError indicates that a key resolved to a Value which could not
// be converted to the requested Go type.
type ConversionError struct {
	Key    string
	Target string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s: %v", e.Key, e.Target, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// LoadError indicates an I/O or parse failure during a load pass. Groups
// already merged before the failure remain in the store.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
