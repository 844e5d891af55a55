// Package sasserr defines the error families the evaluator raises, each
// carrying the span(s) needed to render a useful diagnostic. It generalizes
// the teacher's plain fmt.Errorf-wrapped errors (lessgo mostly just
// returned fmt.Errorf("...: %w", err) from renderer.go and importer.go)
// into typed errors that keep enough structure for a caller to print a
// Sass-style "Error: ... on line N" trace, while still supporting %w
// wrapping and errors.As/errors.Is the way the teacher's code does.
package sasserr

import (
	"fmt"
	"strings"

	"github.com/titpetric/sassgo/ast"
)

// ParseError is raised when core code re-parses a fragment of interpolated
// text (a selector, a media query, an @at-root query) and that fragment
// turns out not to be syntactically valid in context.
type ParseError struct {
	Message string
	Span    ast.Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

// Frame is one entry of a RuntimeError's stack trace: the span active when
// a mixin, function, content block, or module load was invoked.
type Frame struct {
	Description string // e.g. "mixin `button`" or "@import"
	Span        ast.Span
}

// RuntimeError is raised for any failure during statement execution or
// expression evaluation once parsing has already succeeded: type errors,
// undefined variables, failed assertions, user @error calls. It carries a
// primary span plus optional secondary labeled spans (e.g. "first declared
// here" for a duplicate-key map error) and the call stack active at the
// point of failure.
type RuntimeError struct {
	Message   string
	Span      ast.Span
	Secondary []Frame
	Stack     []Frame
	Cause     error
}

func (e *RuntimeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s", e.Message)
	for _, f := range e.Secondary {
		fmt.Fprintf(&b, "\n  %s: %s", f.Span, f.Description)
	}
	fmt.Fprintf(&b, "\n  on %s", e.Span)
	for i := len(e.Stack) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "\n  from %s (%s)", e.Stack[i].Span, e.Stack[i].Description)
	}
	return b.String()
}

func (e *RuntimeError) Unwrap() error { return e.Cause }

// NewRuntimeError builds a RuntimeError with no stack/secondary spans; the
// executor appends stack frames as the error unwinds through invocations.
func NewRuntimeError(span ast.Span, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Span: span}
}

// WithStack returns a copy of e with frame appended to the end of its
// stack trace (innermost call first in Stack, matching the order the
// executor discovers them as the error propagates outward).
func (e *RuntimeError) WithStack(frame Frame) *RuntimeError {
	out := *e
	out.Stack = append(append([]Frame(nil), e.Stack...), frame)
	return &out
}

// ScriptError is raised by a builtin or user function's Go implementation
// and is always caught at
// the call site and re-raised as a RuntimeError carrying the call's span,
// per spec.md's error model: "A ScriptError ... is always caught at the
// call site".
type ScriptError struct {
	Message string
	Cause   error
}

func (e *ScriptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ScriptError) Unwrap() error { return e.Cause }

func NewScriptError(format string, args ...interface{}) *ScriptError {
	return &ScriptError{Message: fmt.Sprintf(format, args...)}
}

// AsRuntime converts any error into a *RuntimeError at the given call site
// span, wrapping ScriptErrors and plain errors alike; a *RuntimeError is
// passed through unchanged except for the stack frame being added by the
// caller via WithStack.
func AsRuntime(err error, span ast.Span) *RuntimeError {
	if err == nil {
		return nil
	}
	if re, ok := err.(*RuntimeError); ok {
		return re
	}
	return &RuntimeError{Message: err.Error(), Span: span, Cause: err}
}
