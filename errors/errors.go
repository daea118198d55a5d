// Package errors defines the faults raised by the exception engine and the
// diagnostics printed when an exception is never caught.
package errors

import (
	"fmt"

	"github.com/deepnoodle-ai/except/exception"
)

// FormattableError is an interface for errors that can be rendered by the
// Formatter.
type FormattableError interface {
	Error() string
	ToFormatted() *FormattedError
}

// MultiFormattableError is an error made of several diagnostics, rendered
// together by Formatter.FormatMultiple.
type MultiFormattableError interface {
	Error() string
	ToFormattedList() []*FormattedError
}

// RuntimeError is a fault in how the engine is driven: too many nested
// regions, regions closed out of order, a throw of a sentinel kind. These
// indicate program-structure bugs and are raised with panic at the fault site.
type RuntimeError struct {
	Code    ErrorCode
	Message string
	Depth   int // frame stack depth when the fault was detected
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s error[%s]: %s", e.Code.Category(), e.Code, e.Message)
}

// ToFormatted converts to the FormattedError type for display.
func (e *RuntimeError) ToFormatted() *FormattedError {
	return &FormattedError{
		Code:    e.Code,
		Kind:    e.Code.Category() + " error",
		Message: e.Message,
		Note:    fmt.Sprintf("%s at depth %d", e.Code.Description(), e.Depth),
	}
}

// NewRuntimeError creates a RuntimeError with a formatted message.
func NewRuntimeError(code ErrorCode, depth int, format string, args ...any) *RuntimeError {
	return &RuntimeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Depth:   depth,
	}
}

// UncaughtError reports an exception that propagated past every protected
// region.
type UncaughtError struct {
	Kind exception.Kind
}

func (e *UncaughtError) Error() string {
	return fmt.Sprintf("uncaught exception %s: %s", e.Kind, e.Kind.Describe())
}

// Code returns E3001.
func (e *UncaughtError) Code() ErrorCode {
	return E3001
}

// ToFormatted converts to the FormattedError type for display.
func (e *UncaughtError) ToFormatted() *FormattedError {
	return &FormattedError{
		Code:    E3001,
		Kind:    "terminate",
		Message: "uncaught exception " + e.Kind.String(),
		Note:    e.Kind.Describe(),
	}
}

// NewUncaughtError creates an UncaughtError for the given kind.
func NewUncaughtError(kind exception.Kind) *UncaughtError {
	return &UncaughtError{Kind: kind}
}

// Diagnostic is a usage error reported by tools built on the engine, such as
// an unknown kind name on a command line.
type Diagnostic struct {
	Code    ErrorCode
	Message string
	Hint    string
}

func (d *Diagnostic) Error() string {
	if d.Hint == "" {
		return d.Message
	}
	return d.Message + " (" + d.Hint + ")"
}

// ToFormatted converts to the FormattedError type for display.
func (d *Diagnostic) ToFormatted() *FormattedError {
	return &FormattedError{
		Code:    d.Code,
		Message: d.Message,
		Hint:    d.Hint,
	}
}

// NewDiagnostic creates a Diagnostic.
func NewDiagnostic(code ErrorCode, message, hint string) *Diagnostic {
	return &Diagnostic{Code: code, Message: message, Hint: hint}
}
