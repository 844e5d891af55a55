package value

import "strings"

// List is an ordered Sass value sequence with a separator ("space", "comma"
// or "slash", the latter added for modern color-channel syntax) and a flag
// for bracketed lists ([a, b]). It generalizes expression/list.go's
// string-only List into one holding typed Values, since the new evaluator
// needs real element values (numbers, colors, nested lists) rather than
// source text fragments.
type List struct {
	Elements  []Value
	Separator string // "space", "comma", "slash", or "" for a single-element list
	Brackets  bool
}

func NewList(elements []Value, separator string, brackets bool) List {
	return List{Elements: elements, Separator: separator, Brackets: brackets}
}

func (l List) Truthy() bool { return true }

func (l List) Equal(other Value) bool {
	ol, ok := other.(List)
	if !ok {
		if len(l.Elements) == 1 {
			return l.Elements[0].Equal(other)
		}
		return false
	}
	if len(l.Elements) != len(ol.Elements) || l.Brackets != ol.Brackets {
		return false
	}
	for i := range l.Elements {
		if !l.Elements[i].Equal(ol.Elements[i]) {
			return false
		}
	}
	return true
}

func (l List) separatorText() string {
	switch l.Separator {
	case "comma":
		return ", "
	case "slash":
		return " / "
	default:
		return " "
	}
}

func (l List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	out := strings.Join(parts, l.separatorText())
	if l.Brackets {
		return "[" + out + "]"
	}
	return out
}

func (l List) TypeName() string { return "list" }

// MapEntry is one key/value pair of a Map, kept in insertion order.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is an ordered Sass map with unique keys compared by Value.Equal,
// matching spec.md's "later duplicate key overwrites earlier" rule.
type Map struct {
	Entries []MapEntry
}

func NewMap() *Map { return &Map{} }

// Set inserts or overwrites (key, val), preserving the first-seen position
// of an existing key, per spec's map semantics.
func (m *Map) Set(key, val Value) {
	for i, e := range m.Entries {
		if e.Key.Equal(key) {
			m.Entries[i].Value = val
			return
		}
	}
	m.Entries = append(m.Entries, MapEntry{Key: key, Value: val})
}

func (m *Map) Get(key Value) (Value, bool) {
	for _, e := range m.Entries {
		if e.Key.Equal(key) {
			return e.Value, true
		}
	}
	return nil, false
}

func (m *Map) Truthy() bool { return true }

func (m *Map) Equal(other Value) bool {
	om, ok := other.(*Map)
	if !ok || len(om.Entries) != len(m.Entries) {
		return false
	}
	for _, e := range m.Entries {
		v, ok := om.Get(e.Key)
		if !ok || !v.Equal(e.Value) {
			return false
		}
	}
	return true
}

func (m *Map) String() string {
	if len(m.Entries) == 0 {
		return "()"
	}
	parts := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		parts[i] = e.Key.String() + ": " + e.Value.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (m *Map) TypeName() string { return "map" }
