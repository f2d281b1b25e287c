// Package errors provides structured error types used across the application.
// We prefer these over raw fmt.Errorf strings to enable reliable checks with
// errors.Is / errors.As and to carry minimal context about the failure.
package errors

import (
	"errors"
	"fmt"
)

// ValidationError indicates invalid input/config/state provided by a caller.
// The engine raises it for exactly one condition: a day token that cannot be
// resolved against the supplied table. It also covers malformed vocabulary
// files at load time.
type ValidationError struct {
	Op  string // where it happened (package.Function)
	Msg string // human friendly message
	Err error  // underlying cause (optional)
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("validation: %s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("validation: %s: %s", e.Op, e.Msg)
}

func (e *ValidationError) Unwrap() error     { return e.Err }
func (e *ValidationError) Operation() string { return e.Op }
func (e *ValidationError) Message() string   { return e.Msg }

func NewValidation(op, msg string, err error) error {
	return &ValidationError{Op: op, Msg: msg, Err: err}
}

// ParseError represents a value that could not be interpreted (a time string
// that does not match its layout, a malformed request body). Callers in the
// extraction path absorb these as no-ops per the engine's failure policy;
// the HTTP surface maps them to 400s.
type ParseError struct {
	Op  string
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("parse: %s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("parse: %s: %s", e.Op, e.Msg)
}

func (e *ParseError) Unwrap() error     { return e.Err }
func (e *ParseError) Operation() string { return e.Op }
func (e *ParseError) Message() string   { return e.Msg }

func NewParse(op, msg string, err error) error { return &ParseError{Op: op, Msg: msg, Err: err} }

// IsKind helpers: allow callers to check error kind without type assertions.
// Example: if errors.Is(err, errors.ErrValidation) { ... }
var (
	ErrValidation = &ValidationError{}
	ErrParse      = &ParseError{}
)

// Is enables errors.Is(err, ErrValidation) via errors.As semantics.
// We delegate to errors.As with the zero-value pointer of each type.
func Is(err, target error) bool {
	if err == nil || target == nil {
		return errors.Is(err, target)
	}
	switch target.(type) {
	case *ValidationError:
		var v *ValidationError
		return errors.As(err, &v)
	case *ParseError:
		var p *ParseError
		return errors.As(err, &p)
	default:
		return errors.Is(err, target)
	}
}
