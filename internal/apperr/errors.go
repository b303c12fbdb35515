// Package apperr defines the error classes the reservation core reports.
// Callers classify with errors.Is against the Kind sentinels; HTTP handlers
// map kinds to status codes with Status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind struct{ name string }

func (k *Kind) Error() string { return k.name }

var (
	KindValidation          = &Kind{"validation error"}
	KindNotFound            = &Kind{"not found"}
	KindConflict            = &Kind{"conflict"}
	KindForbidden           = &Kind{"forbidden"}
	KindPaymentVerification = &Kind{"payment verification failed"}
	KindFatalReconciliation = &Kind{"fatal reconciliation error"}
)

// Error carries a kind plus a human-readable message with enough detail to
// diagnose without extra logging (expected vs actual amounts, deadlines).
type Error struct {
	Kind    *Kind
	Message string
	wrapped error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.wrapped }

func newf(kind *Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *Error {
	return newf(KindValidation, format, args...)
}

func NotFound(format string, args ...interface{}) *Error {
	return newf(KindNotFound, format, args...)
}

func Conflict(format string, args ...interface{}) *Error {
	return newf(KindConflict, format, args...)
}

func Forbidden(format string, args ...interface{}) *Error {
	return newf(KindForbidden, format, args...)
}

func PaymentVerification(format string, args ...interface{}) *Error {
	return newf(KindPaymentVerification, format, args...)
}

// FatalReconciliation is raised when money has moved externally but local
// state could not keep up. The message always names the confirmation number.
func FatalReconciliation(format string, args ...interface{}) *Error {
	return newf(KindFatalReconciliation, format, args...)
}

// Wrap attaches an underlying cause while keeping the kind classification.
func Wrap(err error, kind *Kind, format string, args ...interface{}) *Error {
	e := newf(kind, format, args...)
	e.wrapped = err
	return e
}

// Status maps an error to the HTTP status code its class implies. Unknown
// errors are server errors.
func Status(err error) int {
	switch {
	case errors.Is(err, KindValidation), errors.Is(err, KindPaymentVerification):
		return http.StatusBadRequest
	case errors.Is(err, KindNotFound):
		return http.StatusNotFound
	case errors.Is(err, KindConflict):
		return http.StatusConflict
	case errors.Is(err, KindForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
