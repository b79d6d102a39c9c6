package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation error")
	ErrConflict          = errors.New("conflict")
	ErrUnavailable       = errors.New("unavailable")
	ErrNotImplemented    = errors.New("not implemented")
	ErrStorageCorruption = errors.New("storage corruption")
)

// Validation messages shared by entities and request DTOs.
const (
	MsgRequired    = "is required"
	MsgInvalidUTF8 = "must be valid UTF-8"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotImplementedError is returned when a port operation is invoked on an
// implementation that does not provide it.
type NotImplementedError struct {
	Operation string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, ErrNotImplemented.Error())
}

func (e *NotImplementedError) Unwrap() error {
	return ErrNotImplemented
}

// StorageCorruptionError reports a persisted value that cannot be parsed back
// into valid records. Key names the storage key; Err carries the decode or
// schema failure, if any.
//
// Both errors.Is(err, ErrStorageCorruption) and errors.Is against the
// underlying cause succeed.
type StorageCorruptionError struct {
	Key string
	Err error
}

func (e *StorageCorruptionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: key %q", ErrStorageCorruption.Error(), e.Key)
	}
	return fmt.Sprintf("%s: key %q: %v", ErrStorageCorruption.Error(), e.Key, e.Err)
}

func (e *StorageCorruptionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStorageCorruption}
	}
	return []error{ErrStorageCorruption, e.Err}
}

// StoredRecordError reports a stored record that decoded but failed entity
// validation on read. Index is its position in the stored list. It unwraps
// to the construction error, so errors.As(err, **ValidationError) still
// succeeds; callers that must tell damaged data apart from bad input check
// for this type first.
type StoredRecordError struct {
	Index int
	Err   error
}

func (e *StoredRecordError) Error() string {
	return fmt.Sprintf("stored todo %d: %v", e.Index, e.Err)
}

func (e *StoredRecordError) Unwrap() error {
	return e.Err
}
