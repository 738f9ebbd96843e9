// Package util provides the shared logger and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for data access failures
var (
	ErrNotFound     = errors.New("record not found")
	ErrDecode       = errors.New("record decode failed")
	ErrMissingField = errors.New("required field missing")
	ErrFetch        = errors.New("fetch operation failed")
)

// DecodeError reports a record that exists but is missing fields the
// target type requires.
type DecodeError struct {
	Key     string
	Missing []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: missing fields: %s", e.Key, strings.Join(e.Missing, ", "))
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

// NewDecodeError creates a decode error for the given key and missing fields
func NewDecodeError(key string, missing []string) *DecodeError {
	return &DecodeError{Key: key, Missing: missing}
}

// MissingFieldError reports an absent field on a record where the
// calling operation demands it, even though the type treats it as
// optional.
type MissingFieldError struct {
	Key   string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s has no %s field", e.Key, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// NewMissingFieldError creates a missing-field error
func NewMissingFieldError(key, field string) *MissingFieldError {
	return &MissingFieldError{Key: key, Field: field}
}
