package callable

import "github.com/titpetric/sassgo/value"

// BuiltinFunc is a Go implementation of a built-in Sass function, called
// with already-bound positional values in declared-parameter order plus
// the named arguments that didn't match a positional slot (for functions
// declared with a kwrest parameter).
type BuiltinFunc func(args []value.Value, rest *value.ArgumentList) (value.Value, error)

// Builtin is one registered overload: a parameter list (reusing ast's
// Parameter shape would create an import cycle with the builtins package,
// so overloads here declare their parameters as plain names) and its Go
// implementation.
type Builtin struct {
	Name   string
	Params []string // declared parameter names, in order; last may be "$rest..."
	Fn     BuiltinFunc
}

// Registry is an overload-aware replacement for the teacher's flat
// FuncMap: github.com/titpetric/lessgo's functions/registry.go mapped one
// name to one closure, so LESS builtins could never be overloaded by
// arity/keys the way rgba()/map-get() and friends need to be in Sass.
// Registry instead stores every overload under its name; exec's
// invokeBuiltin tries them in registration order and calls the first one
// that Bind accepts with no error and no unmatched argument names.
type Registry struct {
	overloads map[string][]*Builtin
}

// NewRegistry returns an empty builtin registry.
func NewRegistry() *Registry {
	return &Registry{overloads: make(map[string][]*Builtin)}
}

// Register adds an overload. Multiple calls with the same Name register
// distinct overloads, tried in registration order at call time.
func (r *Registry) Register(b *Builtin) {
	r.overloads[b.Name] = append(r.overloads[b.Name], b)
}

// Lookup returns every overload registered under name.
func (r *Registry) Lookup(name string) ([]*Builtin, bool) {
	b, ok := r.overloads[name]
	return b, ok
}

// Has reports whether any overload of name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.overloads[name]
	return ok
}

// Names returns every registered function name, used to merge one
// Registry's overloads onto another (package sassgo's Config.Functions).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.overloads))
	for name := range r.overloads {
		names = append(names, name)
	}
	return names
}
