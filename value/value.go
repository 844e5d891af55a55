// Package value implements the Sass runtime value lattice: immutable,
// structurally-comparable values produced by evaluating expressions.
// It generalizes the teacher's single numeric-plus-unit expression.Value
// (github.com/titpetric/lessgo's expression/value.go) into the full set
// the spec's data model requires: numbers with unit vectors, colors,
// strings, lists, maps, booleans, null, functions, argument lists and
// deferred calculations.
package value

import "fmt"

// Value is implemented by every runtime value kind and holds only the four
// operations every kind supports. Kind-specific operations (for example
// Number.Arith and Number.Compare) are methods of the concrete types, which
// callers reach through a type switch or type assertion.
type Value interface {
	// Truthy reports whether the value is truthy; only false and null are
	// falsy in Sass.
	Truthy() bool
	// Equal reports structural/value equality per spec.md's equality rules.
	Equal(other Value) bool
	// String renders the value as text; a quoted Str keeps its quotes. The
	// full CSS-facing serialization is a Serializer concern, not this
	// package's.
	String() string
	// TypeName is the Sass type name used in "$x is not a Y" errors.
	TypeName() string
}

// Bool is the Sass boolean value.
type Bool bool

func (b Bool) Truthy() bool { return bool(b) }
func (b Bool) Equal(other Value) bool {
	ob, ok := other.(Bool)
	return ok && ob == b
}
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) TypeName() string { return "bool" }

// Null is the single Sass null value.
type Null struct{}

func (Null) Truthy() bool         { return false }
func (Null) Equal(other Value) bool { _, ok := other.(Null); return ok }
func (Null) String() string        { return "" }
func (Null) TypeName() string      { return "null" }

// Str is a (possibly quoted) Sass string.
type Str struct {
	Text   string
	Quoted bool
}

func NewString(text string, quoted bool) Str { return Str{Text: text, Quoted: quoted} }

func (s Str) Truthy() bool { return true }
func (s Str) Equal(other Value) bool {
	os, ok := other.(Str)
	return ok && os.Text == s.Text
}
func (s Str) String() string {
	if !s.Quoted {
		return s.Text
	}
	return quoteString(s.Text)
}
func (s Str) TypeName() string { return "string" }

func quoteString(text string) string {
	out := make([]byte, 0, len(text)+2)
	out = append(out, '"')
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '"' || c == '\\' {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	out = append(out, '"')
	return string(out)
}

// Function wraps a callable reference (user-defined or built-in) so it can
// flow through expressions as a first-class value (`get-function()`).
type Function struct {
	Name     string
	Callable interface{} // *callable.UserFunction or *callable.Builtin; kept opaque to avoid an import cycle
}

func (f Function) Truthy() bool           { return true }
func (f Function) Equal(other Value) bool { of, ok := other.(Function); return ok && of.Name == f.Name }
func (f Function) String() string         { return fmt.Sprintf("get-function(%q)", f.Name) }
func (f Function) TypeName() string       { return "function" }
