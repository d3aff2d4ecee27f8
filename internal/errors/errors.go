// Package errors is the single errors import for the service: stdlib matching plus pkg/errors stack traces.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error that formats as the given text. It carries no stack; use it for sentinels.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Mark classifies cause under a sentinel: the result matches both with Is,
// and formats as "class: cause" with a stack trace.
func Mark(class, cause error) error {
	if cause == nil {
		return pkgerrors.WithStack(class)
	}

	return pkgerrors.WithStack(&marked{class: class, cause: cause})
}

type marked struct {
	class error
	cause error
}

func (m *marked) Error() string {
	return m.class.Error() + ": " + m.cause.Error()
}

func (m *marked) Unwrap() []error {
	return []error{m.class, m.cause}
}

// Wrap returns an error annotating err with a stack trace and the supplied message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf returns an error annotating err with a stack trace and the format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error with stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
