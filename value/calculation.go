package value

import "strings"

// Calculation is an opaque, deferred arithmetic expression such as
// `calc(1px + var(--x))` that cannot be simplified at compile time because
// it references a custom property or other indeterminate operand. It has
// no teacher precedent (LESS has no calc() deferral); grounded instead on
// the "unresolved, printed-as-is" idea from renderer.go's fallback path for
// any binary-op operand it doesn't recognize, generalized into a first-class
// value so builtins can inspect a calculation's name and arguments.
type Calculation struct {
	Name      string // "calc", "min", "max", "clamp", or "" for a bare operator chain
	Arguments []Value
}

func NewCalculation(name string, args []Value) Calculation {
	return Calculation{Name: name, Arguments: args}
}

func (c Calculation) Truthy() bool { return true }

func (c Calculation) Equal(other Value) bool {
	oc, ok := other.(Calculation)
	if !ok || oc.Name != c.Name || len(oc.Arguments) != len(c.Arguments) {
		return false
	}
	for i := range c.Arguments {
		if !c.Arguments[i].Equal(oc.Arguments[i]) {
			return false
		}
	}
	return true
}

func (c Calculation) String() string {
	parts := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		parts[i] = a.String()
	}
	if c.Name == "" {
		return strings.Join(parts, " ")
	}
	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (c Calculation) TypeName() string { return "calculation" }
