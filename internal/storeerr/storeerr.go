// Package storeerr handles errors raised by the in-memory store.
//
// Repositories return *Error values that carry a category and the entity
// involved; HandleError converts them into user-friendly HTTP errors
// (e.g. converting an "activity not found" into a 404 with the
// ACTIVITY_NOT_FOUND code).
package storeerr

import (
	"errors"
	"fmt"
)

// Code is the category of a store error.
type Code int

const (
	// Other is any failure that has no dedicated mapping.
	Other Code = iota
	// NotFound means the requested record does not exist.
	NotFound
	// AlreadyExists means the write would duplicate a unique record.
	AlreadyExists
)

func (c Code) String() string {
	switch c {
	case NotFound:
		return "not_found"
	case AlreadyExists:
		return "already_exists"
	default:
		return "other"
	}
}

// Error is a store failure about a single entity.
type Error struct {
	Code Code

	// Entity is the record kind in snake_case, e.g. "activity".
	Entity string

	// Key identifies the record the operation was about.
	Key string

	// Message replaces the generated user-facing message when set.
	Message string
}

func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s: %s", e.Entity, e.Key, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Entity, e.Code)
}

// Is matches another *Error with the same Code and Entity, so callers can
// compare against a template such as &Error{Code: NotFound, Entity: "user"}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Entity == "" || t.Entity == e.Entity)
}

// NewNotFound reports a missing record.
func NewNotFound(entity, key string) *Error {
	return &Error{Code: NotFound, Entity: entity, Key: key}
}

// NewAlreadyExists reports a duplicate record.
func NewAlreadyExists(entity, key, message string) *Error {
	return &Error{Code: AlreadyExists, Entity: entity, Key: key, Message: message}
}

// ErrCode reports the Code of err, or Other when err is not a store error.
func ErrCode(err error) Code {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}
	return Other
}
