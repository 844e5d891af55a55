package builtins

import (
	"testing"

	"github.com/titpetric/sassgo/callable"
	"github.com/titpetric/sassgo/value"
)

func call(t *testing.T, name string, args []value.Value, rest *value.ArgumentList) value.Value {
	t.Helper()
	reg := callable.NewRegistry()
	Register(reg)
	overloads, ok := reg.Lookup(name)
	if !ok || len(overloads) == 0 {
		t.Fatalf("no builtin registered for %q", name)
	}
	v, err := overloads[0].Fn(args, rest)
	if err != nil {
		t.Fatalf("%s() error: %v", name, err)
	}
	return v
}

func callErr(t *testing.T, name string, args []value.Value, rest *value.ArgumentList) error {
	t.Helper()
	reg := callable.NewRegistry()
	Register(reg)
	overloads, ok := reg.Lookup(name)
	if !ok || len(overloads) == 0 {
		t.Fatalf("no builtin registered for %q", name)
	}
	_, err := overloads[0].Fn(args, rest)
	return err
}
