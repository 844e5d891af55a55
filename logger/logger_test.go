package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/titpetric/sassgo/ast"
)

func testSpan(line int) ast.Span {
	return ast.Span{URL: "test.scss", Start: ast.Position{Line: line, Column: 1}}
}

func TestWriterWarnFormatsMessageAndSpan(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Warn("deprecated usage", testSpan(3))

	got := buf.String()
	if !strings.Contains(got, "deprecated usage") {
		t.Errorf("output = %q, want it to contain the message", got)
	}
	if !strings.Contains(got, "test.scss:3:1") {
		t.Errorf("output = %q, want it to contain the span", got)
	}
}

func TestWriterWarnDeduplicatesByMessageAndSpan(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Warn("same warning", testSpan(1))
	l.Warn("same warning", testSpan(1))

	if n := strings.Count(buf.String(), "same warning"); n != 1 {
		t.Errorf("warning printed %d times, want 1 (deduplicated)", n)
	}
}

func TestWriterWarnDoesNotDeduplicateAcrossDifferentSpans(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Warn("same warning", testSpan(1))
	l.Warn("same warning", testSpan(2))

	if n := strings.Count(buf.String(), "same warning"); n != 2 {
		t.Errorf("warning printed %d times, want 2 (different spans)", n)
	}
}

func TestWriterDebugFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Debug("trace value", testSpan(7))

	got := buf.String()
	if !strings.Contains(got, "DEBUG: trace value") {
		t.Errorf("output = %q, want it to contain the debug message", got)
	}
}

func TestDiscardDropsEverything(t *testing.T) {
	Discard.Warn("anything", testSpan(1))
	Discard.Debug("anything", testSpan(1))
}

func TestCollectingAppendsDeduplicatedWarnings(t *testing.T) {
	var out []string
	l := Collecting(&out)

	l.Warn("careful", testSpan(1))
	l.Warn("careful", testSpan(1))
	l.Warn("another", testSpan(2))
	l.Debug("ignored", testSpan(3))

	if len(out) != 2 {
		t.Fatalf("out = %v, want 2 deduplicated warning entries", out)
	}
	if !strings.Contains(out[0], "careful") {
		t.Errorf("out[0] = %q, want it to contain 'careful'", out[0])
	}
	if !strings.Contains(out[1], "another") {
		t.Errorf("out[1] = %q, want it to contain 'another'", out[1])
	}
}
