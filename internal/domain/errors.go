package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// PersistenceError marks a failed document-store round trip. Whether it is
// surfaced or swallowed depends on the call site: dashboard trip mutations
// degrade to local-only state, client-form submission reports it.
type PersistenceError struct {
	Op         string
	Collection string
	Err        error
}

func (e PersistenceError) Error() string {
	switch {
	case e.Op != "" && e.Collection != "":
		return fmt.Sprintf("persistence %s on %s failed: %v", e.Op, e.Collection, e.Err)
	case e.Op != "":
		return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("persistence failed: %v", e.Err)
	}
}

func (e PersistenceError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target PersistenceError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
