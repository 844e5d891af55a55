package builtins

import (
	"testing"

	"github.com/titpetric/sassgo/value"
)

func TestTypeOf(t *testing.T) {
	cases := []struct {
		v    value.Value
		want string
	}{
		{value.NewNumber(1), "number"},
		{value.NewString("a", true), "string"},
		{value.Bool(true), "bool"},
		{value.Null{}, "null"},
	}
	for _, c := range cases {
		got := call(t, "type-of", []value.Value{c.v}, nil)
		if got.String() != c.want {
			t.Errorf("type-of(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestInspect(t *testing.T) {
	got := call(t, "inspect", []value.Value{value.NewNumber(5)}, nil)
	if got.String() != "5" {
		t.Errorf("inspect(5) = %v, want 5", got)
	}
}

func TestIfFunctionPicksTrueBranch(t *testing.T) {
	got := call(t, "if", []value.Value{value.Bool(true), value.NewNumber(1), value.NewNumber(2)}, nil)
	if !got.Equal(value.NewNumber(1)) {
		t.Errorf("if(true, 1, 2) = %v, want 1", got)
	}
}

func TestIfFunctionPicksFalseBranch(t *testing.T) {
	got := call(t, "if", []value.Value{value.Bool(false), value.NewNumber(1), value.NewNumber(2)}, nil)
	if !got.Equal(value.NewNumber(2)) {
		t.Errorf("if(false, 1, 2) = %v, want 2", got)
	}
}

func TestKeywordsOnNonArgumentListReturnsEmptyMap(t *testing.T) {
	got := call(t, "keywords", []value.Value{value.NewNumber(1)}, nil)
	m, ok := got.(*value.Map)
	if !ok {
		t.Fatalf("keywords() = %T, want *value.Map", got)
	}
	if len(m.Entries) != 0 {
		t.Errorf("keywords() on a non-arglist = %v, want empty", m.Entries)
	}
}
