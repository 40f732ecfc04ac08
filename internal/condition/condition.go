// Package condition defines the error taxonomy shared by the execution core.
//
// Every failure surfaced by the value model, the native dispatcher, or a
// worker carries one of a small set of codes so that callers can react to
// the class of failure without parsing messages. Errors wrap freely with
// fmt.Errorf("...: %w", err); CodeOf walks the chain.
package condition

import (
	"errors"
	"fmt"
)

// Code classifies a failure raised by the execution core.
type Code int

const (
	// CodeNone is the zero value; no condition error is present.
	CodeNone Code = iota

	// StructuralViolation marks a programming-contract breach: re-executing
	// a terminal worker, dispatching an unknown native function, misusing
	// construction ordering. Fatal to the offending call.
	StructuralViolation

	// TypeMismatch marks a value whose kind diverges from a declared type
	// or element type.
	TypeMismatch

	// ArityMismatch marks a native call whose actual argument count differs
	// from the declared signature.
	ArityMismatch

	// IndexOutOfRange marks an array access past the current size.
	IndexOutOfRange

	// ExecutionFailure marks a statement's own runtime error inside a
	// worker; it aborts that worker only.
	ExecutionFailure
)

// String returns the canonical name of the code.
func (c Code) String() string {
	switch c {
	case StructuralViolation:
		return "structural violation"
	case TypeMismatch:
		return "type mismatch"
	case ArityMismatch:
		return "arity mismatch"
	case IndexOutOfRange:
		return "index out of range"
	case ExecutionFailure:
		return "execution failure"
	default:
		return "unknown"
	}
}

// Error is a classified failure. It implements error and supports
// errors.Is against another *Error with the same code.
type Error struct {
	code Code
	msg  string
	err  error
}

// New creates a classified error from a format string.
func New(code Code, format string, args ...any) *Error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an existing error, preserving it for errors.Unwrap.
func Wrap(code Code, err error, format string, args ...any) *Error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...), err: err}
}

// Code returns the error's classification.
func (e *Error) Code() Code {
	return e.code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.code, e.msg)
}

// Unwrap exposes the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Is matches any *Error carrying the same code, so sentinel comparisons
// like errors.Is(err, condition.New(condition.TypeMismatch, "")) work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

// CodeOf returns the code of the first classified error in err's chain,
// or CodeNone when the chain carries no classified error.
func CodeOf(err error) Code {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.code
	}
	return CodeNone
}
