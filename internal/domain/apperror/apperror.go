// Package apperror defines the closed set of error kinds the use cases return,
// so callers branch on kind instead of parsing messages.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAuthRejected
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAuthRejected:
		return "auth_rejected"
	case KindValidation:
		return "validation_error"
	}
	return "unknown"
}

// Reasons attached to KindAuthRejected errors.
const (
	ReasonBanned                 = "banned"
	ReasonRegistrationClosed     = "registration_closed"
	ReasonInvalidToken           = "invalid_token"
	ReasonForbidden              = "forbidden"
	ReasonMaintenance            = "maintenance"
	ReasonSupplierCreationClosed = "supplier_creation_closed"
)

// Error is the typed application error.
type Error struct {
	Kind     Kind
	Resource string
	ID       string
	Reason   string
	Field    string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
	case KindAuthRejected:
		if e.Message != "" {
			return e.Message
		}
		return "authentication rejected: " + e.Reason
	case KindValidation:
		if e.Message != "" {
			return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
		}
		return "invalid " + e.Field
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports a lookup by id that found nothing.
func NotFound(resource, id string) *Error {
	return &Error{Kind: KindNotFound, Resource: resource, ID: id}
}

// AuthRejected reports a refused login or a missing permission.
func AuthRejected(reason, message string) *Error {
	return &Error{Kind: KindAuthRejected, Reason: reason, Message: message}
}

// Validation reports an invalid input field.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// WrapValidation keeps the underlying validator error for logging.
func WrapValidation(field string, err error) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: err.Error(), Err: err}
}

// KindOf returns the kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// As extracts the typed error.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsAuthRejected(err error) bool { return KindOf(err) == KindAuthRejected }
func IsValidation(err error) bool   { return KindOf(err) == KindValidation }

// HasReason reports whether err is an AuthRejected error with the given reason.
func HasReason(err error, reason string) bool {
	e, ok := As(err)
	return ok && e.Kind == KindAuthRejected && e.Reason == reason
}
