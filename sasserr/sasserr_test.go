package sasserr

import (
	"errors"
	"strings"
	"testing"

	"github.com/titpetric/sassgo/ast"
)

func testSpan(line int) ast.Span {
	return ast.Span{URL: "test.scss", Start: ast.Position{Line: line, Column: 1}}
}

func TestRuntimeErrorMessageIncludesSpanAndStack(t *testing.T) {
	err := NewRuntimeError(testSpan(5), "%s is not a number", "\"foo\"")
	err = err.WithStack(Frame{Description: "mixin `button`", Span: testSpan(10)})

	msg := err.Error()
	if !strings.Contains(msg, `"foo" is not a number`) {
		t.Errorf("Error() = %q, want it to contain the formatted message", msg)
	}
	if !strings.Contains(msg, "test.scss:5:1") {
		t.Errorf("Error() = %q, want it to contain the primary span", msg)
	}
	if !strings.Contains(msg, "mixin `button`") {
		t.Errorf("Error() = %q, want it to contain the stack frame description", msg)
	}
}

func TestRuntimeErrorWithStackDoesNotMutateOriginal(t *testing.T) {
	base := NewRuntimeError(testSpan(1), "boom")
	withFrame := base.WithStack(Frame{Description: "call site", Span: testSpan(2)})

	if len(base.Stack) != 0 {
		t.Errorf("original error's Stack should be untouched, got %v", base.Stack)
	}
	if len(withFrame.Stack) != 1 {
		t.Errorf("WithStack result should carry one frame, got %v", withFrame.Stack)
	}
}

func TestRuntimeErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := &RuntimeError{Message: "wrapped", Span: testSpan(1), Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause via Unwrap")
	}
}

func TestScriptErrorMessage(t *testing.T) {
	plain := NewScriptError("$x must be a color")
	if got, want := plain.Error(), "$x must be a color"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("division by zero")
	wrapped := &ScriptError{Message: "arithmetic failed", Cause: cause}
	if !strings.Contains(wrapped.Error(), "division by zero") {
		t.Errorf("Error() = %q, want it to include the cause", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause via Unwrap")
	}
}

func TestAsRuntimePassesThroughExistingRuntimeError(t *testing.T) {
	original := NewRuntimeError(testSpan(1), "already typed")
	got := AsRuntime(original, testSpan(99))

	if got != original {
		t.Error("AsRuntime should pass an existing *RuntimeError through unchanged")
	}
}

func TestAsRuntimeWrapsPlainError(t *testing.T) {
	plain := errors.New("plain failure")
	got := AsRuntime(plain, testSpan(3))

	if got == nil {
		t.Fatal("AsRuntime should never return nil for a non-nil error")
	}
	if got.Span != testSpan(3) {
		t.Errorf("AsRuntime should attach the given span, got %v", got.Span)
	}
	if !errors.Is(got, plain) {
		t.Error("errors.Is should find the wrapped plain error via Unwrap")
	}
}

func TestAsRuntimeNilIsNil(t *testing.T) {
	if AsRuntime(nil, testSpan(1)) != nil {
		t.Error("AsRuntime(nil, ...) should return nil")
	}
}

