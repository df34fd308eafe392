package lang

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrReadInput          = NewError("failed to read input")
	ErrUnexpectedChar     = NewError("unexpected character")
	ErrUnterminatedString = NewError("unterminated string")
	ErrUnknownFunction    = NewError("unknown function")
	ErrArity              = NewError("wrong number of arguments")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
//
// Advisory diagnostics carry a detail message that replaces the base message
// in Error(), so a lexical error reads exactly "unexpected character 'x'"
// while errors.Is still matches the sentinel it was derived from.
type Error struct {
	msg    string
	detail string
	err    error       // Wrapped error (for errors.Unwrap)
	attrs  []slog.Attr // Attributes for structured logging
	base   *Error
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	switch {
	case e.detail != "":
		part = append(part, e.detail)
	case e.msg != "":
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel this error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	for b := e; b != nil; b = b.base {
		if b == t {
			return true
		}
	}

	return false
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	switch {
	case e.detail != "":
		attrs = append(attrs, slog.String("error", e.detail))
	case e.msg != "":
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:    e.msg,
		detail: e.detail,
		err:    err,
		attrs:  e.attrs, // Share attrs
		base:   e.origin(),
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:    e.msg,
		detail: e.detail,
		err:    e.err,
		attrs:  newAttrs,
		base:   e.origin(),
	}
}

// Detail returns a copy of the error whose message is replaced by detail.
func (e *Error) Detail(detail string) *Error {
	return &Error{
		msg:    e.msg,
		detail: detail,
		err:    e.err,
		attrs:  e.attrs,
		base:   e.origin(),
	}
}

// origin returns the sentinel e was derived from, or e itself.
func (e *Error) origin() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}
