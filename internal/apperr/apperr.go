// Package apperr defines the error variants every form flow returns so a
// single HTTP boundary can translate them.
package apperr

import (
	"errors"
	"fmt"

	"github.com/lemerle/medassist/internal/locale"
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// ValidationError is a client input problem.
type ValidationError struct {
	Field string
	Key   locale.Key
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Key)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Key)
}

// ConflictError means the write collided with existing state.
type ConflictError struct {
	Key    locale.Key
	Detail string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s (%s)", e.Key, e.Detail)
}

// StoreError wraps a datastore failure. Key is the message shown to callers.
type StoreError struct {
	Op  string
	Key locale.Key
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Validation builds a *ValidationError.
func Validation(field string, key locale.Key) error {
	return &ValidationError{Field: field, Key: key}
}

// Conflict builds a *ConflictError.
func Conflict(key locale.Key, detail string) error {
	return &ConflictError{Key: key, Detail: detail}
}

// Store builds a *StoreError.
func Store(op string, key locale.Key, err error) error {
	return &StoreError{Op: op, Key: key, Err: err}
}

// KindOf reports the variant of err, looking through wrapping.
func KindOf(err error) Kind {
	var v *ValidationError
	var c *ConflictError
	var s *StoreError
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &v):
		return KindValidation
	case errors.As(err, &c):
		return KindConflict
	case errors.As(err, &s):
		return KindStore
	default:
		return KindUnknown
	}
}

// KeyOf returns the message key carried by err, or fallback.
func KeyOf(err error, fallback locale.Key) locale.Key {
	var v *ValidationError
	var c *ConflictError
	var s *StoreError
	switch {
	case errors.As(err, &v) && v.Key != "":
		return v.Key
	case errors.As(err, &c) && c.Key != "":
		return c.Key
	case errors.As(err, &s) && s.Key != "":
		return s.Key
	default:
		return fallback
	}
}
