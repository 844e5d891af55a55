package value

import "testing"

func TestListString(t *testing.T) {
	tests := []struct {
		name string
		l    List
		want string
	}{
		{"space separated", NewList([]Value{NewNumber(1), NewNumber(2)}, "space", false), "1 2"},
		{"comma separated", NewList([]Value{NewNumber(1), NewNumber(2)}, "comma", false), "1, 2"},
		{"bracketed", NewList([]Value{NewNumber(1), NewNumber(2)}, "comma", true), "[1, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListEqualSingleElementUnwrapsToScalar(t *testing.T) {
	single := NewList([]Value{NewNumber(5)}, "", false)
	if !single.Equal(NewNumber(5)) {
		t.Error("a single-element list should equal its bare element")
	}
}

func TestListEqual(t *testing.T) {
	a := NewList([]Value{NewNumber(1), NewNumber(2)}, "comma", false)
	b := NewList([]Value{NewNumber(1), NewNumber(2)}, "comma", false)
	c := NewList([]Value{NewNumber(1), NewNumber(3)}, "comma", false)
	bracketed := NewList([]Value{NewNumber(1), NewNumber(2)}, "comma", true)

	if !a.Equal(b) {
		t.Error("lists with equal elements and separator should be equal")
	}
	if a.Equal(c) {
		t.Error("lists with different elements should not be equal")
	}
	if a.Equal(bracketed) {
		t.Error("bracketed and unbracketed lists should not be equal")
	}
}

func TestMapSetOverwritesPreservingOrder(t *testing.T) {
	m := NewMap()
	m.Set(NewString("a", true), NewNumber(1))
	m.Set(NewString("b", true), NewNumber(2))
	m.Set(NewString("a", true), NewNumber(3))

	if len(m.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(m.Entries))
	}
	if m.Entries[0].Key.String() != `"a"` {
		t.Errorf("first entry key = %q, want %q (position should be preserved)", m.Entries[0].Key.String(), `"a"`)
	}
	v, ok := m.Get(NewString("a", true))
	if !ok || !v.Equal(NewNumber(3)) {
		t.Errorf("Get(a) = %v, %v, want 3, true (overwritten value)", v, ok)
	}
}

func TestMapEqual(t *testing.T) {
	a := NewMap()
	a.Set(NewString("x", true), NewNumber(1))
	b := NewMap()
	b.Set(NewString("x", true), NewNumber(1))
	c := NewMap()
	c.Set(NewString("x", true), NewNumber(2))

	if !a.Equal(b) {
		t.Error("maps with the same entries should be equal")
	}
	if a.Equal(c) {
		t.Error("maps with different values should not be equal")
	}
}

func TestMapString(t *testing.T) {
	m := NewMap()
	if got, want := m.String(), "()"; got != want {
		t.Errorf("empty map String() = %q, want %q", got, want)
	}
	m.Set(NewString("a", true), NewNumber(1))
	if got, want := m.String(), `("a": 1)`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
