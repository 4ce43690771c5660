// Package errors is the single errors import for this codebase. It re-exports
// the stdlib inspection helpers (Is, As, Join, ...) next to the pkg/errors
// wrapping helpers, so call sites get stack traces on wrapped failures without
// juggling two imports.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Wrap annotates err with message and a stack trace captured here.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message and a stack trace captured here.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack attaches a stack trace to err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// WithMessage prefixes err with message, without capturing a stack trace.
func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}

// Errorf builds a new error from a format specifier, with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Cause unwinds pkg/errors wrappers down to the root error.
//
//nolint:wrapcheck // Passthrough keeps pkg/errors cause semantics intact.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}

// New returns a plain sentinel-style error with the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain assignable to target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType is the generic form of As, returning the matched error directly.
// Requires Go 1.26+.
func AsType[T error](err error) (T, bool) {
	return stderrors.AsType[T](err)
}

// Unwrap exposes the next error in err's chain, if any.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join combines multiple errors into one that matches each of them.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
